package registry

import "agentdash/agentdash/types"

type MCPCategory string

const (
	MCPVersionControl MCPCategory = "version-control"
	MCPCloudProvider  MCPCategory = "cloud-provider"
	MCPMonitoring     MCPCategory = "monitoring"
	MCPSecurity       MCPCategory = "security"
	MCPContainer      MCPCategory = "container"
	MCPDatabase       MCPCategory = "database"
	MCPNotification   MCPCategory = "notification"
	MCPDocumentation  MCPCategory = "documentation"
)

// MCPServerSpec describes an external tool server the agents can connect to.
type MCPServerSpec struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	Icon            string            `json:"icon"`
	Category        MCPCategory       `json:"category"`
	Capabilities    []string          `json:"capabilities"`
	SupportedAgents []types.AgentType `json:"supported_agents"`
}

var mcpServers = []MCPServerSpec{
	{
		ID:              "github",
		Name:            "GitHub",
		Description:     "Access repositories, pull requests, issues, and actions workflows",
		Icon:            "Github",
		Category:        MCPVersionControl,
		Capabilities:    []string{"read_repos", "manage_prs", "view_actions", "create_issues"},
		SupportedAgents: []types.AgentType{types.AgentCICD, types.AgentSecurity, types.AgentIncident},
	},
	{
		ID:              "gitlab",
		Name:            "GitLab",
		Description:     "Manage GitLab projects, pipelines, and merge requests",
		Icon:            "GitBranch",
		Category:        MCPVersionControl,
		Capabilities:    []string{"read_projects", "manage_pipelines", "view_ci"},
		SupportedAgents: []types.AgentType{types.AgentCICD, types.AgentSecurity},
	},
	{
		ID:              "aws",
		Name:            "AWS",
		Description:     "Manage AWS resources, CloudFormation, and services",
		Icon:            "Cloud",
		Category:        MCPCloudProvider,
		Capabilities:    []string{"manage_ec2", "manage_s3", "cloudformation", "iam"},
		SupportedAgents: []types.AgentType{types.AgentInfrastructure, types.AgentCloud, types.AgentSecurity, types.AgentMonitoring},
	},
	{
		ID:              "azure",
		Name:            "Azure",
		Description:     "Access Azure resources, ARM templates, and DevOps",
		Icon:            "Cloud",
		Category:        MCPCloudProvider,
		Capabilities:    []string{"manage_resources", "arm_templates", "azure_devops"},
		SupportedAgents: []types.AgentType{types.AgentInfrastructure, types.AgentCloud, types.AgentCICD},
	},
	{
		ID:              "gcp",
		Name:            "Google Cloud",
		Description:     "Manage GCP resources, GKE, and Cloud Build",
		Icon:            "Cloud",
		Category:        MCPCloudProvider,
		Capabilities:    []string{"manage_compute", "gke", "cloud_build", "iam"},
		SupportedAgents: []types.AgentType{types.AgentInfrastructure, types.AgentCloud, types.AgentContainer},
	},
	{
		ID:              "prometheus",
		Name:            "Prometheus",
		Description:     "Query metrics, manage alerts, and view targets",
		Icon:            "Activity",
		Category:        MCPMonitoring,
		Capabilities:    []string{"query_metrics", "manage_alerts", "view_targets"},
		SupportedAgents: []types.AgentType{types.AgentMonitoring, types.AgentIncident},
	},
	{
		ID:              "grafana",
		Name:            "Grafana",
		Description:     "Access dashboards, create visualizations, and manage alerts",
		Icon:            "BarChart3",
		Category:        MCPMonitoring,
		Capabilities:    []string{"view_dashboards", "create_panels", "manage_alerts"},
		SupportedAgents: []types.AgentType{types.AgentMonitoring, types.AgentIncident},
	},
	{
		ID:              "datadog",
		Name:            "Datadog",
		Description:     "Monitor infrastructure, APM, and log management",
		Icon:            "Activity",
		Category:        MCPMonitoring,
		Capabilities:    []string{"view_metrics", "apm", "log_management", "synthetics"},
		SupportedAgents: []types.AgentType{types.AgentMonitoring, types.AgentIncident, types.AgentSecurity},
	},
	{
		ID:              "vault",
		Name:            "HashiCorp Vault",
		Description:     "Manage secrets, encryption, and access control",
		Icon:            "KeyRound",
		Category:        MCPSecurity,
		Capabilities:    []string{"manage_secrets", "encryption", "pki", "auth"},
		SupportedAgents: []types.AgentType{types.AgentSecurity, types.AgentConfig, types.AgentInfrastructure},
	},
	{
		ID:              "snyk",
		Name:            "Snyk",
		Description:     "Security scanning for code, containers, and dependencies",
		Icon:            "Shield",
		Category:        MCPSecurity,
		Capabilities:    []string{"code_scan", "container_scan", "dependency_scan"},
		SupportedAgents: []types.AgentType{types.AgentSecurity, types.AgentCICD, types.AgentContainer},
	},
	{
		ID:              "kubernetes",
		Name:            "Kubernetes",
		Description:     "Manage K8s clusters, deployments, and resources",
		Icon:            "Box",
		Category:        MCPContainer,
		Capabilities:    []string{"manage_deployments", "view_pods", "manage_services", "helm"},
		SupportedAgents: []types.AgentType{types.AgentContainer, types.AgentInfrastructure, types.AgentMonitoring},
	},
	{
		ID:              "docker",
		Name:            "Docker",
		Description:     "Manage containers, images, and Docker Compose",
		Icon:            "Container",
		Category:        MCPContainer,
		Capabilities:    []string{"manage_containers", "build_images", "compose"},
		SupportedAgents: []types.AgentType{types.AgentContainer, types.AgentCICD},
	},
	{
		ID:              "postgresql",
		Name:            "PostgreSQL",
		Description:     "Query and manage PostgreSQL databases",
		Icon:            "Database",
		Category:        MCPDatabase,
		Capabilities:    []string{"query", "schema_management", "backup"},
		SupportedAgents: []types.AgentType{types.AgentInfrastructure, types.AgentIncident},
	},
	{
		ID:              "slack",
		Name:            "Slack",
		Description:     "Send notifications and manage channels",
		Icon:            "MessageSquare",
		Category:        MCPNotification,
		Capabilities:    []string{"send_messages", "manage_channels", "webhooks"},
		SupportedAgents: []types.AgentType{types.AgentIncident, types.AgentMonitoring, types.AgentCICD},
	},
	{
		ID:              "pagerduty",
		Name:            "PagerDuty",
		Description:     "Manage incidents, on-call schedules, and escalations",
		Icon:            "Bell",
		Category:        MCPNotification,
		Capabilities:    []string{"create_incidents", "manage_oncall", "escalations"},
		SupportedAgents: []types.AgentType{types.AgentIncident, types.AgentMonitoring},
	},
	{
		ID:              "confluence",
		Name:            "Confluence",
		Description:     "Access and manage documentation and wikis",
		Icon:            "FileText",
		Category:        MCPDocumentation,
		Capabilities:    []string{"read_pages", "create_pages", "search"},
		SupportedAgents: []types.AgentType{types.AgentConfig, types.AgentIncident},
	},
	{
		ID:              "notion",
		Name:            "Notion",
		Description:     "Access Notion workspaces, databases, and pages",
		Icon:            "BookOpen",
		Category:        MCPDocumentation,
		Capabilities:    []string{"read_pages", "create_pages", "manage_databases"},
		SupportedAgents: []types.AgentType{types.AgentConfig, types.AgentIncident},
	},
	{
		ID:              "terraform",
		Name:            "Terraform",
		Description:     "Manage Terraform state, plans, and modules",
		Icon:            "Layers",
		Category:        MCPCloudProvider,
		Capabilities:    []string{"plan", "apply", "state_management", "modules"},
		SupportedAgents: []types.AgentType{types.AgentInfrastructure, types.AgentConfig, types.AgentCloud},
	},
	{
		ID:              "ansible",
		Name:            "Ansible",
		Description:     "Execute playbooks and manage configurations",
		Icon:            "Settings",
		Category:        MCPCloudProvider,
		Capabilities:    []string{"run_playbooks", "inventory", "roles"},
		SupportedAgents: []types.AgentType{types.AgentConfig, types.AgentInfrastructure},
	},
}

// MCPServers returns the full MCP server catalog.
func MCPServers() []MCPServerSpec {
	return mcpServers
}

// MCPServer returns the catalog entry for id.
func MCPServer(id string) (MCPServerSpec, bool) {
	for _, s := range mcpServers {
		if s.ID == id {
			return s, true
		}
	}
	return MCPServerSpec{}, false
}
