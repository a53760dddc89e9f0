package entity

// weatherapi.com forecast.json wire types (the subset this service reads).

type WeatherAPICondition struct {
	Text string `json:"text"`
}

type WeatherAPIDay struct {
	MaxTempC      float64             `json:"maxtemp_c"`
	MinTempC      float64             `json:"mintemp_c"`
	AvgTempC      float64             `json:"avgtemp_c"`
	AvgHumidity   float64             `json:"avghumidity"`
	TotalPrecipMM float64             `json:"totalprecip_mm"`
	MaxWindKPH    float64             `json:"maxwind_kph"`
	Condition     WeatherAPICondition `json:"condition"`
}

type WeatherAPIForecastDay struct {
	Date string        `json:"date"`
	Day  WeatherAPIDay `json:"day"`
}

type WeatherAPIForecast struct {
	ForecastDays []WeatherAPIForecastDay `json:"forecastday"`
}

type WeatherAPIResponse struct {
	Forecast *WeatherAPIForecast `json:"forecast"`
}
