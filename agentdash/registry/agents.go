package registry

import "agentdash/agentdash/types"

// Agent is the static descriptive metadata for one of the 8 DevOps agents.
type Agent struct {
	ID             types.AgentType `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Icon           string          `json:"icon"`
	Color          string          `json:"color"`
	Specialization string          `json:"specialization"`
	ExamplePrompts []string        `json:"example_prompts"`
}

var agents = []Agent{
	{
		ID:             types.AgentCICD,
		Name:           "CI/CD Agent",
		Description:    "Pipeline configuration and deployment automation",
		Icon:           "GitBranch",
		Color:          "blue",
		Specialization: "Continuous Integration and Continuous Deployment",
		ExamplePrompts: []string{
			"How do I set up a GitHub Actions workflow?",
			"Create a Jenkins pipeline for a Node.js app",
			"Best practices for blue-green deployments",
		},
	},
	{
		ID:             types.AgentInfrastructure,
		Name:           "Infrastructure Agent",
		Description:    "Infrastructure as Code and provisioning",
		Icon:           "Server",
		Color:          "green",
		Specialization: "Infrastructure as Code and Cloud Provisioning",
		ExamplePrompts: []string{
			"Write a Terraform module for an AWS VPC",
			"How to manage state in Terraform?",
			"CloudFormation vs Terraform comparison",
		},
	},
	{
		ID:             types.AgentMonitoring,
		Name:           "Monitoring Agent",
		Description:    "Observability, logging, and metrics",
		Icon:           "Activity",
		Color:          "yellow",
		Specialization: "Observability, Logging, and Metrics",
		ExamplePrompts: []string{
			"Set up Prometheus alerting rules",
			"Best practices for structured logging",
			"Create a Grafana dashboard for API metrics",
		},
	},
	{
		ID:             types.AgentSecurity,
		Name:           "Security Agent",
		Description:    "DevSecOps and security practices",
		Icon:           "Shield",
		Color:          "red",
		Specialization: "DevSecOps and Security Best Practices",
		ExamplePrompts: []string{
			"How to implement secrets management?",
			"Security scanning in CI/CD pipelines",
			"Container security best practices",
		},
	},
	{
		ID:             types.AgentContainer,
		Name:           "Container Agent",
		Description:    "Docker, Kubernetes, and orchestration",
		Icon:           "Box",
		Color:          "cyan",
		Specialization: "Containerization and Orchestration",
		ExamplePrompts: []string{
			"Optimize a Dockerfile for production",
			"Kubernetes deployment strategies",
			"How to set up Helm charts?",
		},
	},
	{
		ID:             types.AgentCloud,
		Name:           "Cloud Agent",
		Description:    "AWS, Azure, GCP management",
		Icon:           "Cloud",
		Color:          "purple",
		Specialization: "Cloud Platform Management",
		ExamplePrompts: []string{
			"Compare AWS Lambda vs Azure Functions",
			"Set up cross-account IAM roles",
			"GCP networking best practices",
		},
	},
	{
		ID:             types.AgentConfig,
		Name:           "Config Agent",
		Description:    "Ansible, Terraform, Chef configuration",
		Icon:           "Settings",
		Color:          "orange",
		Specialization: "Configuration Management",
		ExamplePrompts: []string{
			"Write an Ansible playbook for nginx",
			"Chef cookbook structure best practices",
			"Puppet vs Ansible comparison",
		},
	},
	{
		ID:             types.AgentIncident,
		Name:           "Incident Agent",
		Description:    "Incident response and troubleshooting",
		Icon:           "AlertTriangle",
		Color:          "pink",
		Specialization: "Incident Response and Troubleshooting",
		ExamplePrompts: []string{
			"Create an incident response runbook",
			"How to perform a post-mortem?",
			"Troubleshoot high CPU usage",
		},
	},
}

// All returns the full agent catalog.
func All() []Agent {
	return agents
}

// Get returns the agent metadata for id, or false when id is unknown.
func Get(id types.AgentType) (Agent, bool) {
	for _, a := range agents {
		if a.ID == id {
			return a, true
		}
	}
	return Agent{}, false
}

// DisplayName returns the agent's name, falling back to a generic label for
// unknown ids so callers never render an empty name.
func DisplayName(id types.AgentType) string {
	if a, ok := Get(id); ok {
		return a.Name
	}
	return "DevOps Agent"
}
