package types

import "time"

// AgentType identifies one of the fixed DevOps agents. All chat state is
// partitioned by this key.
type AgentType string

const (
	AgentCICD           AgentType = "cicd"
	AgentInfrastructure AgentType = "infrastructure"
	AgentMonitoring     AgentType = "monitoring"
	AgentSecurity       AgentType = "security"
	AgentContainer      AgentType = "container"
	AgentCloud          AgentType = "cloud"
	AgentConfig         AgentType = "config"
	AgentIncident       AgentType = "incident"
)

// AllAgentTypes returns the closed enumeration, in display order.
func AllAgentTypes() []AgentType {
	return []AgentType{
		AgentCICD,
		AgentInfrastructure,
		AgentMonitoring,
		AgentSecurity,
		AgentContainer,
		AgentCloud,
		AgentConfig,
		AgentIncident,
	}
}

// ValidAgentType reports whether id is one of the known agents.
func ValidAgentType(id AgentType) bool {
	switch id {
	case AgentCICD, AgentInfrastructure, AgentMonitoring, AgentSecurity,
		AgentContainer, AgentCloud, AgentConfig, AgentIncident:
		return true
	}
	return false
}

type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// Message is a single chat turn. Messages are never mutated after creation.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	AgentID   AgentType `json:"agentId"`
}
