package composer

import "github.com/shouni/codevision-kit/pkg/domain"

// UseCaseExample は UI に並べる活用例のカードです。
type UseCaseExample struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
	UseCase     string `json:"use_case"`
}

// DocSample は DocToApp フォームに読み込めるドキュメントのサンプルです。
type DocSample struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Doc         string `json:"doc"`
}

// Examples は /v1/examples で返す内容一式です。
type Examples struct {
	UseCases   []UseCaseExample `json:"use_cases"`
	DocSamples []DocSample      `json:"doc_samples"`
}

var useCaseExamples = []UseCaseExample{
	{"Figma to Code", "Screenshot your Figma designs → Get pixel-perfect HTML/CSS/React", "Save hours of manual coding", domain.SingleImageToCode.String()},
	{"App Screenshots to Clone", "Upload app screenshots → Generate working mobile app", "Rapid prototyping and learning", domain.MultiImageToApp.String()},
	{"Flowchart to Implementation", "Draw flowcharts → Get implemented logic with error handling", "Bridge design and development", domain.SingleImageToCode.String()},
	{"Architecture Diagram to Code", "System diagrams → Generate API structure and microservices", "Faster system implementation", domain.SingleImageToCode.String()},
	{"Hand-Drawn Sketch to App", "Paper sketches → Working prototype", "Start from napkin ideas", domain.SingleImageToCode.String()},
	{"Legacy UI Modernization", "Old UI screenshot → Modern, responsive redesign", "Upgrade old systems quickly", domain.CodeRefactor.String()},
}

var docSamples = []DocSample{
	{
		Title:       "Weather API Integration",
		Description: "Generate a web app that integrates with OpenWeatherMap API",
		Doc:         "OpenWeatherMap API documentation:\n- Base URL: https://api.openweathermap.org/data/2.5/\n- Endpoint: /weather\n- Parameters: q (city name), appid (API key)\n- Response: JSON with temp, humidity, description",
	},
	{
		Title:       "Payment Processing",
		Description: "Create a Stripe payment integration",
		Doc:         "Stripe API for payment processing:\n- Create payment intent\n- Confirm payment\n- Handle webhooks for payment status\n- Required: secret key, publishable key",
	},
	{
		Title:       "Data Dashboard",
		Description: "Build an analytics dashboard with charts",
		Doc:         "Requirements:\n- Display data from CSV/API\n- Interactive charts (line, bar, pie)\n- Filtering and date range selection\n- Export functionality",
	},
}

// DefaultExamples は組み込みの活用例とサンプルのコピーを返します。
func DefaultExamples() Examples {
	return Examples{
		UseCases:   append([]UseCaseExample(nil), useCaseExamples...),
		DocSamples: append([]DocSample(nil), docSamples...),
	}
}
