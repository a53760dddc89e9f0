package prompt

import "github.com/agrisense/farm-backend/internal/entity"

// ExampleTasks is the few-shot task list embedded into the tasks prompt by
// default. One fully worked task is enough to anchor the output shape.
var ExampleTasks = []entity.Task{
	{
		TaskID:   "T-2025-04-W17-01",
		Title:    "Optimize Irrigation Schedule for Hot Weather",
		Priority: entity.PriorityHigh,
		DueDate:  "2025-04-24",
		Status:   entity.StatusNotStarted,
		Context:  "With forecasted temperatures reaching 35-40°C and humidity at 14-16%, the wheat crop in tillering stage is at risk of moisture stress. Current moisture level is Low with limited water availability from groundwater source using drip irrigation.",
		TaskDescription: "Adjust the irrigation schedule to provide adequate moisture during the critical tillering stage while conserving limited water resources. " +
			"Proper irrigation management during this period is essential for tiller development and will directly impact final yield. " +
			"The current dry conditions combined with rising temperatures create a high risk of water stress that could permanently reduce the crop's yield potential.",
		Steps: []string{
			"Inspect the existing drip irrigation system for any clogs or damage",
			"Increase irrigation frequency from once per day to twice daily (early morning and evening)",
			"Reduce each irrigation session duration by 15% to conserve water while maintaining soil moisture",
			"Focus additional water on areas that show signs of stress (wilting or yellowing)",
			"Monitor soil moisture daily by checking 4-6 inches below surface",
		},
		SupportingInformation: "Research shows that wheat yield can decrease by up to 50% when moisture stress occurs during the tillering stage. " +
			"Optimizing irrigation during this period is critical for developing a strong root system and healthy tillers that will support grain development. " +
			"The current tillering stage represents a critical period where water management directly impacts final yield potential.",
		FollowUp: "Check soil moisture levels daily and observe plant vigor. Adjust irrigation schedule if conditions change or if plants show signs of continued stress despite irrigation adjustments.",
		Dependencies: []string{
			"Requires completion of Task T-2025-04-W16-01 (Irrigation System Maintenance)",
			"Requires stable electricity supply for pump operation",
		},
	},
}

// ExampleAdvisory is the few-shot advisory embedded into the advisory prompt
// by default.
var ExampleAdvisory = &entity.Advisory{
	ID:              "A-2025-04-W17",
	Title:           "Weekly Farm Advisory",
	DateRange:       "April 23-29, 2025",
	CropStatus:      "Wheat at tillering stage (30 days after sowing)",
	HealthStatus:    "Good, vibrant green color",
	WeatherAlert:    "Rising temperatures (reaching 40°C) with very low humidity",
	PriorityActions: "Optimize irrigation, apply NPK fertilizer, monitor heat stress",
	RiskLevel:       "high",

	CropDevelopment: entity.AdvisoryInsight{
		Title: "Crop Development Insights",
		Content: "Your wheat crop is currently in the tillering stage, a critical phase when the plant develops multiple stems that will eventually produce grain. " +
			"At 30 days after sowing, your crop is progressing as expected with healthy green foliage. This stage will significantly impact your final yield potential.",
		Underground: "The root system is actively expanding, and the plants are establishing their yield foundation. The next 2-3 weeks represent a critical window for tiller development.",
	},

	WeatherImpact: entity.AdvisoryAnalysis{
		Title:   "Weather Impact Analysis",
		Content: "The forecast shows consistently hot and dry conditions with temperatures climbing steadily to reach 40.2°C by April 29.",
		Risks: []entity.AdvisoryRisk{
			{
				Name:        "Heat Stress Risk",
				Level:       "high",
				Description: "Temperatures above 35°C can reduce wheat photosynthesis efficiency and damage developing tillers",
			},
			{
				Name:        "Moisture Loss Risk",
				Level:       "high",
				Description: "Low humidity (11-16%) combined with high temperatures will accelerate soil moisture evaporation",
			},
			{
				Name:        "Irrigation Demand",
				Level:       "medium",
				Description: "Will increase by approximately 20-25% compared to normal requirements",
			},
		},
		Recommendation: "Implement twice-daily irrigation cycles (early morning and evening) to maintain soil moisture during this heat wave.",
	},

	NutritionalRequirements: entity.AdvisoryNutrition{
		Title:   "Nutritional Requirements",
		Content: "Your wheat is entering a period of high nutrient demand as tillers develop. The second NPK application is now critical and should be prioritized by April 25th.",
		Nutrients: []entity.AdvisoryNutrient{
			{Name: "Nitrogen (N)", Benefit: "Supports vigorous tiller development and leaf growth"},
			{Name: "Phosphorus (P)", Benefit: "Promotes strong root development"},
			{Name: "Potassium (K)", Benefit: "Helps with water regulation and heat stress tolerance"},
		},
		Recommendation: "Complete your NPK application before temperatures reach their peak, ideally during early morning hours when humidity is relatively higher.",
	},

	PestDiseaseWatch: entity.AdvisoryWatch{
		Title: "Pest & Disease Watch",
		Risks: []entity.AdvisoryRisk{
			{Name: "Aphids", Level: "medium-high", Description: "Rising temperatures favor rapid reproduction"},
			{Name: "Leaf Rust", Level: "medium", Description: "Dry conditions may limit spread"},
			{Name: "Powdery Mildew", Level: "low", Description: "Requires higher humidity"},
		},
		Warning: "Be especially vigilant for aphids, which thrive in hot conditions and can vector viruses. Check undersides of leaves every 2-3 days.",
	},

	WaterManagement: entity.AdvisoryStrategy{
		Title: "Water Management Strategy",
		Steps: []string{
			"Increase irrigation frequency to twice daily (5am and 7pm)",
			"Check moisture level at 4-6 inches below surface daily",
			"Inspect drip lines for clogging due to mineral build-up in these hot conditions",
			"Consider temporary shade structures for most vulnerable sections if temperatures exceed 38°C for extended periods",
		},
	},

	LookingAhead: entity.AdvisoryOutlook{
		Title: "Looking Ahead: Next Two Weeks",
		Predictions: []string{
			"Your crop will be transitioning from tillering to stem elongation stage",
			"Heat stress may accelerate development, potentially shortening growing season",
			"Prepare for foliar nutrient spray containing micronutrients in 7-10 days",
			"Heat-protective agents may be needed if hot conditions persist",
		},
	},

	ResourcePlanning: entity.AdvisoryPlanning{
		Title: "Resource Planning",
		SecureNow: []string{
			"Additional drip irrigation maintenance supplies",
			"Foliar spray containing zinc and manganese",
			"Heat-stress mitigating products",
		},
		ScheduleSoon: []string{
			"Irrigation system thorough inspection",
			"Follow-up tissue analysis to confirm nutrient status",
		},
	},
}
