package api

// SampleData carries the explanatory text of a classifier record.
type SampleData struct {
	Text string `json:"text"`
}

// SampleRecord is one canned classifier result: a label set plus the text
// explaining it. The table below is fixed mock data, never mutated.
type SampleRecord struct {
	Labels []string   `json:"labels"`
	Data   SampleData `json:"data"`
}

var sampleRecords = []SampleRecord{
	{
		Labels: []string{"UBC", "teen", "golf", "female"},
		Data: SampleData{
			Text: "this girl is clearly an avid golf player who regularly goes to <Golf Course Name> on saturdays. They seem to attend UBC.",
		},
	},
	{
		Labels: []string{"UAB", "teen", "skiing", "male", "food", "travel"},
		Data: SampleData{
			Text: "this person likes to travel a lot on vacations, especially to ski resorts. They also seem to enjoy trying out different foods and food photography.",
		},
	},
}

var enrichmentSamples = []string{
	"Active university student, interested in startups and productivity workflows.",
	"Outdoor enthusiast; frequent posts about hiking, skiing, and mountain photography.",
	"Food lover experimenting with fusion recipes; occasional travel diaries.",
	"Aspiring content creator focused on tech gadgets and workflow optimization.",
	"Golfer on weekends, studies engineering, shares campus club activities.",
}
