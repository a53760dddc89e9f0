package groq

import (
	"context"
	"strings"

	"github.com/agrisense/farm-backend/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector serves canned completions for local runs without a Groq key.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

const mockReport = `{
  "report": "The crop is currently in the tillering stage and appears healthy with a vibrant green color. The growth stage assessment indicates that the crop is developing as expected for this period. The soil condition seems moist and fertile, suitable for cultivation. No visible signs of pests or diseases are observed on the crop. Weed pressure seems minimal. The irrigation method appears efficient, with no signs of over or under irrigation. No obvious nutrient deficiency indicators are visible. Overall, the crop health status is good, with the potential for a successful harvest.",
  "summary": "Healthy crop in tillering stage with no visible pests, diseases or deficiencies."
}`

const mockTasks = `[
  {
    "taskId": "T-2025-04-W18-01",
    "title": "Inspect Drip Irrigation Lines",
    "priority": "High",
    "dueDate": "2025-05-01",
    "status": "Not Started",
    "context": "Hot, dry forecast increases the cost of any irrigation downtime.",
    "taskDescription": "Walk every irrigation line and check emitters for clogging or damage so the system delivers full capacity before the heat peaks. Catching a blocked emitter now avoids localized moisture stress later in the week when temperatures are forecast to climb.",
    "steps": [
      "Walk each line while the system is running",
      "Flag emitters with weak or no flow",
      "Flush or replace flagged emitters",
      "Record repairs for the maintenance log"
    ],
    "supportingInformation": "Uniform water delivery is the cheapest protection against heat stress during tillering.",
    "followUp": "Re-check repaired emitters after two irrigation cycles.",
    "dependencies": [
      "Requires stable electricity supply for pump operation"
    ]
  },
  {
    "taskId": "T-2025-04-W18-02",
    "title": "Scout for Aphids on Leaf Undersides",
    "priority": "Medium",
    "dueDate": "2025-05-02 to 2025-05-04",
    "status": "Not Started",
    "context": "Rising temperatures favor rapid aphid reproduction.",
    "taskDescription": "Inspect leaf undersides across at least five locations per field section every two to three days. Early detection keeps any infestation below the economic threshold and avoids a full spray program.",
    "steps": [
      "Select five random plants per section",
      "Check undersides of the top three leaves",
      "Record counts per plant",
      "Escalate if counts exceed five aphids per leaf"
    ],
    "supportingInformation": "Aphids vector viral diseases that cannot be treated once established.",
    "followUp": "Repeat scouting on the same plants to track the trend.",
    "dependencies": [
      "Requires clear weather conditions for effective monitoring"
    ]
  }
]`

const mockAdvisory = `{
  "id": "A-2025-04-W18",
  "title": "Weekly Farm Advisory",
  "dateRange": "April 30 - May 6, 2025",
  "cropStatus": "Crop at tillering stage (35 days after sowing)",
  "healthStatus": "Good, vibrant green color",
  "weatherAlert": "Hot and dry conditions forecast for the whole week",
  "priorityActions": "Inspect irrigation, scout for aphids, plan NPK application",
  "riskLevel": "medium",
  "cropDevelopment": {
    "title": "Crop Development Insights",
    "content": "The crop is progressing through tillering on schedule with healthy foliage.",
    "underground": "Root expansion continues; keep the top 6 inches of soil moist."
  },
  "weatherImpact": {
    "title": "Weather Impact Analysis",
    "content": "Consistently hot and dry conditions are expected.",
    "risks": [
      {
        "name": "Heat Stress Risk",
        "level": "medium",
        "description": "Afternoon temperatures may reduce photosynthesis efficiency"
      }
    ],
    "recommendation": "Shift irrigation to early morning and evening cycles."
  },
  "nutritionalRequirements": {
    "title": "Nutritional Requirements",
    "content": "Nutrient demand rises as tillers develop.",
    "nutrients": [
      {
        "name": "Nitrogen (N)",
        "benefit": "Supports vigorous tiller development"
      }
    ],
    "recommendation": "Apply the second NPK dose before peak heat."
  },
  "pestDiseaseWatch": {
    "title": "Pest & Disease Watch",
    "risks": [
      {
        "name": "Aphids",
        "level": "medium",
        "description": "Hot weather favors rapid reproduction"
      }
    ],
    "warning": "Check undersides of leaves every 2-3 days."
  },
  "waterManagement": {
    "title": "Water Management Strategy",
    "steps": [
      "Irrigate twice daily during the heat peak",
      "Check soil moisture at 4-6 inches daily"
    ]
  },
  "lookingAhead": {
    "title": "Looking Ahead: Next Two Weeks",
    "predictions": [
      "Transition from tillering to stem elongation",
      "Foliar micronutrient spray likely needed in 7-10 days"
    ]
  },
  "resourcePlanning": {
    "title": "Resource Planning",
    "secureNow": [
      "Drip irrigation spares"
    ],
    "scheduleSoon": [
      "Full irrigation system inspection"
    ]
  }
}`

// Generate picks a canned artifact by sniffing the request: image attachments
// mean a report, an advisory prompt mentions the advisory structure, anything
// else is a task list.
func (m *MockConnector) Generate(ctx context.Context, req *entity.GenerateRequest) (string, error) {
	ctxzap.Info(ctx, "[MOCK] generating completion",
		zap.Int("image_count", len(req.ImageURLs)),
		zap.Bool("json_mode", req.JSONMode),
	)

	switch {
	case len(req.ImageURLs) > 0:
		return mockReport, nil
	case strings.Contains(req.Prompt, "weekly farm advisory"):
		return mockAdvisory, nil
	default:
		return mockTasks, nil
	}
}
