package entity

// FarmParameters describes a farm as the caller knows it. Every field is
// optional; prompt builders render blanks as explicit placeholders so the
// model always sees the full section structure.
type FarmParameters struct {
	Crop                    string `json:"crop,omitempty"`
	FarmLocation            string `json:"farmLocation,omitempty"`
	CurrentGrowthStage      string `json:"currentGrowthStage,omitempty"`
	SoilType                string `json:"soilType,omitempty"`
	SowingDate              string `json:"sowingDate,omitempty"`
	IrrigationType          string `json:"irrigationType,omitempty"`
	WaterAvailabilityStatus string `json:"waterAvailabilityStatus,omitempty"`
	WaterSource             string `json:"waterSource,omitempty"`
	FertilizersUsed         string `json:"fertilizersUsed,omitempty"`
	CurrentWeather          string `json:"currentWeather,omitempty"`
}

// Task is one actionable, dated unit of farm work generated per planning
// cycle. Tasks are never stored by the service; previous-week tasks are
// supplied by the caller on the next request.
type Task struct {
	TaskID                string   `json:"taskId"`
	Title                 string   `json:"title"`
	Priority              string   `json:"priority"`
	DueDate               string   `json:"dueDate"`
	Status                string   `json:"status"`
	Context               string   `json:"context,omitempty"`
	TaskDescription       string   `json:"taskDescription,omitempty"`
	Steps                 []string `json:"steps,omitempty"`
	SupportingInformation string   `json:"supportingInformation,omitempty"`
	FollowUp              string   `json:"followUp,omitempty"`
	Dependencies          []string `json:"dependencies,omitempty"`
}

// Task priority domain.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// StatusNotStarted is the initial status of every generated task.
const StatusNotStarted = "Not Started"

// Advisory is the structured weekly guidance document combining report,
// tasks and weather into prioritized sections.
type Advisory struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	DateRange       string `json:"dateRange"`
	CropStatus      string `json:"cropStatus"`
	HealthStatus    string `json:"healthStatus"`
	WeatherAlert    string `json:"weatherAlert"`
	PriorityActions string `json:"priorityActions"`
	RiskLevel       string `json:"riskLevel"`

	CropDevelopment         AdvisoryInsight   `json:"cropDevelopment"`
	WeatherImpact           AdvisoryAnalysis  `json:"weatherImpact"`
	NutritionalRequirements AdvisoryNutrition `json:"nutritionalRequirements"`
	PestDiseaseWatch        AdvisoryWatch     `json:"pestDiseaseWatch"`
	WaterManagement         AdvisoryStrategy  `json:"waterManagement"`
	LookingAhead            AdvisoryOutlook   `json:"lookingAhead"`
	ResourcePlanning        AdvisoryPlanning  `json:"resourcePlanning"`
}

type AdvisoryInsight struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Underground string `json:"underground"`
}

type AdvisoryRisk struct {
	Name        string `json:"name"`
	Level       string `json:"level"`
	Description string `json:"description"`
}

type AdvisoryAnalysis struct {
	Title          string         `json:"title"`
	Content        string         `json:"content"`
	Risks          []AdvisoryRisk `json:"risks"`
	Recommendation string         `json:"recommendation"`
}

type AdvisoryNutrient struct {
	Name    string `json:"name"`
	Benefit string `json:"benefit"`
}

type AdvisoryNutrition struct {
	Title          string             `json:"title"`
	Content        string             `json:"content"`
	Nutrients      []AdvisoryNutrient `json:"nutrients"`
	Recommendation string             `json:"recommendation"`
}

type AdvisoryWatch struct {
	Title   string         `json:"title"`
	Risks   []AdvisoryRisk `json:"risks"`
	Warning string         `json:"warning"`
}

type AdvisoryStrategy struct {
	Title string   `json:"title"`
	Steps []string `json:"steps"`
}

type AdvisoryOutlook struct {
	Title       string   `json:"title"`
	Predictions []string `json:"predictions"`
}

type AdvisoryPlanning struct {
	Title        string   `json:"title"`
	SecureNow    []string `json:"secureNow"`
	ScheduleSoon []string `json:"scheduleSoon"`
}
