// Package prompt builds the natural-language instructions sent to the model.
// Builders are pure functions over farm parameters and prior artifacts; they
// do no I/O. Absent parameter fields render as explicit placeholders so the
// model always sees the full section structure.
package prompt

import (
	"fmt"

	"github.com/agrisense/farm-backend/internal/entity"
)

const notSpecified = "Not specified"

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}

const reportTemplate = `I am providing you images from a %s farm in %s.

Additional context:
- Growth stage: %s
- Soil type: %s
- Current weather: %s
- Sowing date: %s
- Irrigation method: %s

Your job is to act as a professional crop inspector and provide a comprehensive farm assessment report covering:

1. Current crop health status
2. Growth stage assessment
3. Soil condition evaluation
4. Pest or disease identification (if any)
5. Weed pressure assessment
6. Irrigation efficiency
7. Nutrient deficiency indicators (if any)

Provide specific, detailed information based on what you can observe in the images. Speak with the confidence of a professional crop inspector. Do not refer to "the image"; refer to the crop directly. Never add a sentence like "However, without specific details, I cannot provide a comprehensive farm assessment report." Be deterministic.

In the last sentence, summarize your findings. This is a report, not advice.

I want a paragraph format.
Return your response in this JSON format:
{
  "report": "add entire report here",
  "summary": "oneline summary"
}`

// Report builds the crop-inspector prompt for a farm condition report. The
// accompanying images are attached by the generation client, not embedded in
// the text.
func Report(p entity.FarmParameters) string {
	return fmt.Sprintf(reportTemplate,
		p.Crop,
		p.FarmLocation,
		orPlaceholder(p.CurrentGrowthStage, notSpecified),
		orPlaceholder(p.SoilType, notSpecified),
		orPlaceholder(p.CurrentWeather, notSpecified),
		orPlaceholder(p.SowingDate, notSpecified),
		orPlaceholder(p.IrrigationType, notSpecified),
	)
}
