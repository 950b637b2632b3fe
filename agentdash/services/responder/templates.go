package responder

import "agentdash/agentdash/types"

// Canned replies per agent. Each agent owns at least two templates with
// domain-relevant content; selection is uniformly random.
var mockResponseTemplates = map[types.AgentType][]string{
	types.AgentCICD: {
		"For CI/CD pipelines, I recommend using GitHub Actions or GitLab CI. Here's a basic workflow:\n\n```yaml\nname: CI Pipeline\non: [push, pull_request]\njobs:\n  build:\n    runs-on: ubuntu-latest\n    steps:\n      - uses: actions/checkout@v3\n      - name: Build\n        run: npm ci && npm run build\n```",
		"Blue-green deployments minimize downtime. You can implement this with:\n\n```yaml\ndeployment:\n  strategy:\n    blueGreen:\n      activeService: app-blue\n      previewService: app-green\n```",
	},
	types.AgentInfrastructure: {
		"Here's a Terraform module for an AWS VPC:\n\n```hcl\nresource \"aws_vpc\" \"main\" {\n  cidr_block = var.vpc_cidr\n  enable_dns_hostnames = true\n  tags = {\n    Name = var.vpc_name\n  }\n}\n```",
		"For state management in Terraform, use remote backends like S3:\n\n```hcl\nterraform {\n  backend \"s3\" {\n    bucket = \"terraform-state\"\n    key    = \"prod/terraform.tfstate\"\n    region = \"us-east-1\"\n  }\n}\n```",
	},
	types.AgentMonitoring: {
		"Here's a Prometheus alerting rule for high CPU:\n\n```yaml\ngroups:\n  - name: cpu_alerts\n    rules:\n      - alert: HighCPU\n        expr: cpu_usage > 80\n        for: 5m\n        labels:\n          severity: warning\n```",
		"For structured logging, use JSON format:\n\n```json\n{\n  \"timestamp\": \"2024-01-15T10:30:00Z\",\n  \"level\": \"INFO\",\n  \"service\": \"api\",\n  \"message\": \"Request processed\",\n  \"duration_ms\": 45\n}\n```",
	},
	types.AgentSecurity: {
		"For secrets management, use HashiCorp Vault or AWS Secrets Manager:\n\n```bash\n# Store a secret\nvault kv put secret/myapp/config api_key=\"your-key\"\n\n# Retrieve in application\nvault kv get -field=api_key secret/myapp/config\n```",
		"Add security scanning to your CI pipeline:\n\n```yaml\nsecurity-scan:\n  stage: test\n  script:\n    - trivy image --severity HIGH,CRITICAL $IMAGE\n    - snyk test --severity-threshold=high\n```",
	},
	types.AgentContainer: {
		"Here's an optimized multi-stage Dockerfile:\n\n```dockerfile\nFROM node:18-alpine AS builder\nWORKDIR /app\nCOPY package*.json ./\nRUN npm ci --only=production\n\nFROM node:18-alpine\nWORKDIR /app\nCOPY --from=builder /app/node_modules ./node_modules\nCOPY . .\nUSER node\nCMD [\"node\", \"server.js\"]\n```",
		"For Kubernetes deployments, use rolling updates:\n\n```yaml\napiVersion: apps/v1\nkind: Deployment\nspec:\n  strategy:\n    type: RollingUpdate\n    rollingUpdate:\n      maxSurge: 1\n      maxUnavailable: 0\n```",
	},
	types.AgentCloud: {
		"For cross-account IAM roles in AWS:\n\n```json\n{\n  \"Version\": \"2012-10-17\",\n  \"Statement\": [{\n    \"Effect\": \"Allow\",\n    \"Principal\": {\"AWS\": \"arn:aws:iam::ACCOUNT_ID:root\"},\n    \"Action\": \"sts:AssumeRole\"\n  }]\n}\n```",
		"AWS Lambda vs Azure Functions comparison:\n- Lambda: Better AWS integration, 15-min timeout\n- Azure Functions: Better .NET support, consumption plan\n- Both support Node.js, Python, and event-driven architectures",
	},
	types.AgentConfig: {
		"Here's an Ansible playbook for nginx:\n\n```yaml\n- name: Install and configure nginx\n  hosts: webservers\n  become: yes\n  tasks:\n    - name: Install nginx\n      apt:\n        name: nginx\n        state: present\n    - name: Start nginx\n      service:\n        name: nginx\n        state: started\n        enabled: yes\n```",
		"Chef cookbook structure best practices:\n\n```\ncookbooks/myapp/\n├── recipes/\n│   └── default.rb\n├── templates/\n│   └── config.erb\n├── attributes/\n│   └── default.rb\n└── metadata.rb\n```",
	},
	types.AgentIncident: {
		"Incident response runbook template:\n\n1. **Detection**: Alert triggered at [TIME]\n2. **Triage**: Assess severity (P1-P4)\n3. **Communication**: Notify stakeholders\n4. **Investigation**: Check logs, metrics, recent changes\n5. **Mitigation**: Apply fix or rollback\n6. **Resolution**: Confirm service restored\n7. **Post-mortem**: Schedule within 48 hours",
		"For high CPU troubleshooting:\n\n```bash\n# Check top processes\ntop -o %CPU\n\n# Check for runaway processes\nps aux --sort=-%cpu | head -10\n\n# Check system load\nuptime\ncat /proc/loadavg\n```",
	},
}
