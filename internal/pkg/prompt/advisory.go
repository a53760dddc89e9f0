package prompt

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/agrisense/farm-backend/internal/entity"
)

const noUpcomingTasksPlaceholder = "No tasks available for the upcoming week."

const advisorySchema = `Generate the weekly advisory.
Return your response as a valid JSON object. The JSON structure should look exactly like this:

{
  "id": "A-YYYY-MM-WWW",
  "title": "Weekly Farm Advisory",
  "dateRange": "Month Day-Day, Year",
  "cropStatus": "Crop at growth stage (days after sowing)",
  "healthStatus": "Health assessment",
  "weatherAlert": "Key weather concern",
  "priorityActions": "Top 3 priority actions",
  "riskLevel": "high/medium/low",

  "cropDevelopment": {
    "title": "Crop Development Insights",
    "content": "Detailed content",
    "underground": "Root development info"
  },

  "weatherImpact": {
    "title": "Weather Impact Analysis",
    "content": "Weather summary",
    "risks": [
      {
        "name": "Risk name",
        "level": "high/medium/low",
        "description": "Risk description"
      }
    ],
    "recommendation": "Specific recommendation"
  },

  "nutritionalRequirements": {
    "title": "Nutritional Requirements",
    "content": "Nutrition summary",
    "nutrients": [
      {
        "name": "Nutrient name",
        "benefit": "Nutrient benefit"
      }
    ],
    "recommendation": "Specific recommendation"
  },

  "pestDiseaseWatch": {
    "title": "Pest & Disease Watch",
    "risks": [
      {
        "name": "Pest/disease name",
        "level": "high/medium/low",
        "description": "Description"
      }
    ],
    "warning": "General warning"
  },

  "waterManagement": {
    "title": "Water Management Strategy",
    "steps": [
      "Step 1",
      "Step 2"
    ]
  },

  "lookingAhead": {
    "title": "Looking Ahead: Next Two Weeks",
    "predictions": [
      "Prediction 1",
      "Prediction 2"
    ]
  },

  "resourcePlanning": {
    "title": "Resource Planning",
    "secureNow": [
      "Item 1",
      "Item 2"
    ],
    "scheduleSoon": [
      "Action 1",
      "Action 2"
    ]
  }
}

Make sure to:
1. Use the exact same field names and structure
2. Include all sections exactly as shown
3. Maintain the same JSON formatting
4. Use real data from the provided parameters and farm report
5. Focus on actionable recommendations specific to the current conditions

Return ONLY the JSON output with no additional text or explanation.`

// Advisory builds the weekly advisory prompt. upcomingTasks and weatherText
// are embedded verbatim; absent values become explicit placeholders. example
// is an optional worked advisory serialized as a few-shot reference.
func Advisory(p entity.FarmParameters, farmReport string, upcomingTasks []entity.Task, weatherText string, example *entity.Advisory, generatedAt time.Time) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "I need to generate a comprehensive weekly farm advisory for a %s farm in %s.\n", p.Crop, p.FarmLocation)
	sb.WriteString("The advisory must follow EXACTLY the structure and format provided in the example. Do not deviate from this structure.\n\n")

	fmt.Fprintf(&sb, "## FARM REPORT (Generated on %s):\n%s\n\n", generatedAt.Format("2006-01-02"), farmReport)

	sb.WriteString("## FARM PARAMETERS:\n")
	fmt.Fprintf(&sb, "- Crop: %s\n", p.Crop)
	fmt.Fprintf(&sb, "- Location: %s\n", p.FarmLocation)
	fmt.Fprintf(&sb, "- Growth Stage: %s\n", p.CurrentGrowthStage)
	fmt.Fprintf(&sb, "- Soil Type: %s\n", p.SoilType)
	fmt.Fprintf(&sb, "- Sowing Date: %s\n", p.SowingDate)
	fmt.Fprintf(&sb, "- Water Source: %s\n", p.WaterSource)
	fmt.Fprintf(&sb, "- Irrigation Type: %s\n", p.IrrigationType)
	fmt.Fprintf(&sb, "- Water Availability: %s\n", p.WaterAvailabilityStatus)
	fmt.Fprintf(&sb, "- Fertilizer Type: %s\n\n", p.FertilizersUsed)

	fmt.Fprintf(&sb, "## WEATHER FORECAST (Next 7 days):\n%s\n\n", orPlaceholder(weatherText, noWeatherPlaceholder))

	sb.WriteString("## UPCOMING WEEK'S TASKS:\n")
	if len(upcomingTasks) > 0 {
		serialized, _ := json.MarshalIndent(upcomingTasks, "", "  ")
		sb.Write(serialized)
		sb.WriteString("\n\n")
	} else {
		sb.WriteString(noUpcomingTasksPlaceholder + "\n\n")
	}

	if example != nil {
		serialized, _ := json.MarshalIndent(example, "", "  ")
		fmt.Fprintf(&sb, "Here is an example advisory for reference: %s\n\n", serialized)
	}

	sb.WriteString(advisorySchema)

	return sb.String()
}
