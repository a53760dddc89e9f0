package prompt

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/agrisense/farm-backend/internal/entity"
)

const (
	noWeatherPlaceholder       = "No weather data available"
	noPreviousTasksPlaceholder = "This is the first week of task generation, no previous tasks available"
)

const dependenciesGuidance = `Tasks should include dependency information when applicable. Dependencies should be listed in the "dependencies" field and can reference:
1. Previous tasks that must be completed first
2. Conditions that must be met before task execution
3. Resources that must be available

For example:
"dependencies": [
  "Requires completion of Task T-2025-04-W17-01 (Irrigation System Maintenance)",
  "Requires soil moisture level at Medium or higher",
  "Requires clear weather with minimal wind"
]`

const tasksSchema = `Return your response as a valid JSON array with each task as a separate object. The JSON structure should look like this:
[
  {
    "taskId": "T-YYYY-MM-W##-##",
    "title": "Action-oriented task title",
    "priority": "High/Medium/Low",
    "dueDate": "YYYY-MM-DD",
    "status": "Not Started",
    "context": "Detailed context about the farm conditions relevant to this task",
    "taskDescription": "A very detailed and comprehensive explanation of what the task involves and why it's important. It should be a complete paragraph",
    "steps": [
      "Detailed instruction",
      "Detailed instruction",
      "..."
    ],
    "supportingInformation": "Additional information about the importance and benefits of completing this task",
    "followUp": "Actions to take after task completion",
    "dependencies": [
      "Dependency 1: Description of what this task depends on",
      "Dependency 2: Another dependency",
      "..."
    ]
  },
  { ... }
]`

// Tasks builds the weekly task generation prompt. previousTasks and example
// are optional; example is serialized verbatim as a few-shot reference.
func Tasks(p entity.FarmParameters, farmReport string, previousTasks []entity.Task, example []entity.Task, generatedAt time.Time) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "I need to generate comprehensive weekly farm tasks for a %s farm in %s.\n\n", p.Crop, p.FarmLocation)

	fmt.Fprintf(&sb, "## FARM REPORT (Generated on %s):\n%s\n\n", generatedAt.Format("2006-01-02"), farmReport)

	sb.WriteString("## FARM PARAMETERS:\n")
	fmt.Fprintf(&sb, "- Crop: %s\n", p.Crop)
	fmt.Fprintf(&sb, "- Location: %s\n", p.FarmLocation)
	fmt.Fprintf(&sb, "- Growth Stage: %s\n", p.CurrentGrowthStage)
	fmt.Fprintf(&sb, "- Soil Type: %s\n", p.SoilType)
	fmt.Fprintf(&sb, "- Irrigation Type: %s\n", p.IrrigationType)
	fmt.Fprintf(&sb, "- Water Availability: %s\n", p.WaterAvailabilityStatus)
	fmt.Fprintf(&sb, "- Fertilizer Type: %s\n\n", p.FertilizersUsed)

	fmt.Fprintf(&sb, "## WEATHER FORECAST (Next 7 days):\n%s\n\n", orPlaceholder(p.CurrentWeather, noWeatherPlaceholder))

	sb.WriteString("## PREVIOUS WEEK'S TASKS STATUS:\n")
	if len(previousTasks) > 0 {
		serialized, _ := json.MarshalIndent(previousTasks, "", "  ")
		sb.Write(serialized)
		sb.WriteString("\n\n")
	} else {
		sb.WriteString(noPreviousTasksPlaceholder + "\n\n")
	}

	sb.WriteString(dependenciesGuidance + "\n\n")

	fmt.Fprintf(&sb, "Based on all the above information, generate 4-5 comprehensive agricultural tasks for the upcoming week. The tasks should be actionable, specific to the current farm conditions, prioritized appropriately, and incorporate local farming knowledge and practices from %s.\n\n", p.FarmLocation)

	sb.WriteString(`Each task should include:
1. A unique task ID (format: T-YYYY-MM-W##-##)
2. A clear, action-oriented title
3. Priority level (High/Medium/Low)
4. Due date or timeframe (specific days within the upcoming week)
5. Initial status (always "Not Started")
6. Detailed context relevant to the task
7. A very comprehensive and detailed task description explaining what needs to be done and why. It has to be a complete paragraph.
8. Detailed step-by-step instructions on how to complete the task
9. Supporting information explaining the importance and benefits
10. Follow-up actions after task completion
11. Dependencies on other tasks or conditions

If any previous tasks were not completed or marked as "In Progress", incorporate them into this week's tasks with appropriate priority adjustments if they are still relevant.

`)

	if len(example) > 0 {
		serialized, _ := json.MarshalIndent(example, "", "  ")
		fmt.Fprintf(&sb, "Here is an example of tasks for reference: %s\n\n", serialized)
	}

	sb.WriteString(tasksSchema + "\n\n")

	fmt.Fprintf(&sb, "Make sure all tasks are relevant to the current farm conditions, growth stage and weather forecast. Use local terminology from %s where appropriate that would help farmers.", p.FarmLocation)

	return sb.String()
}
