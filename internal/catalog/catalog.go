package catalog

// Category represents an agile maturity category.
type Category string

const (
	CategoryDelivery      Category = "delivery"
	CategoryAdaptation    Category = "adaptation"
	CategoryCollaboration Category = "collaboration"
	CategoryTechnical     Category = "technical"
	CategoryOptimization  Category = "optimization"
	CategoryTeam          Category = "team"
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{
		CategoryDelivery,
		CategoryAdaptation,
		CategoryCollaboration,
		CategoryTechnical,
		CategoryOptimization,
		CategoryTeam,
	}
}

// DisplayName returns a human-readable name for a category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryDelivery:
		return "Delivery"
	case CategoryAdaptation:
		return "Adaptation"
	case CategoryCollaboration:
		return "Collaboration"
	case CategoryTechnical:
		return "Technical"
	case CategoryOptimization:
		return "Optimization"
	case CategoryTeam:
		return "Team"
	default:
		return string(c)
	}
}

// Description returns the explanatory text shown for a category on the
// results screen.
func (c Category) Description() string {
	switch c {
	case CategoryDelivery:
		return "How effectively the team delivers working software frequently and continuously"
	case CategoryAdaptation:
		return "How well the team embraces and responds to change throughout the development process"
	case CategoryCollaboration:
		return "The quality of interactions between team members, stakeholders, and customers"
	case CategoryTechnical:
		return "The team's commitment to technical excellence and good design practices"
	case CategoryOptimization:
		return "How efficiently the team works and eliminates waste"
	case CategoryTeam:
		return "The team's ability to self-organize, maintain pace, and continuously improve"
	default:
		return ""
	}
}

// Question is a single assessment question. The catalog is fixed at compile
// time and never mutated.
type Question struct {
	ID          int
	Text        string
	Category    Category
	Description string
}

// MaxScore is the highest rating a single question can receive.
const MaxScore = 5

// MinScore is the lowest rating a single question can receive.
const MinScore = 1

var questions = []Question{
	{
		ID:          1,
		Text:        "Does what we're doing at this moment support the early and continuous delivery of valuable software?",
		Category:    CategoryDelivery,
		Description: "Agile teams focus on delivering working software frequently, with a preference for shorter timescales.",
	},
	{
		ID:          2,
		Text:        "Does our process welcome and take advantage of change?",
		Category:    CategoryAdaptation,
		Description: "Agile processes harness change for the customer's competitive advantage, even late in development.",
	},
	{
		ID:          3,
		Text:        "Does our process lead to and support the delivery of working functionality? Are the developers and the product owner working together daily?",
		Category:    CategoryCollaboration,
		Description: "Business people and developers must work together daily throughout the project to ensure alignment.",
	},
	{
		ID:          4,
		Text:        "Are customers and business stakeholders working closely with the project team?",
		Category:    CategoryCollaboration,
		Description: "Regular collaboration with stakeholders ensures the team builds the right product and can respond quickly to feedback.",
	},
	{
		ID:          5,
		Text:        "Does our environment give the development team the support it needs to get the job done?",
		Category:    CategoryOptimization,
		Description: "Build projects around motivated individuals. Give them the environment and support they need, and trust them to get the job done.",
	},
	{
		ID:          6,
		Text:        "Are we communicating face to face more than through phone and email?",
		Category:    CategoryCollaboration,
		Description: "The most efficient and effective method of conveying information to and within a development team is face-to-face conversation.",
	},
	{
		ID:          7,
		Text:        "Are we measuring progress by the amount of working functionality produced?",
		Category:    CategoryDelivery,
		Description: "Working software is the primary measure of progress in agile development, not documentation or plans.",
	},
	{
		ID:          8,
		Text:        "Can we maintain this pace indefinitely?",
		Category:    CategoryTeam,
		Description: "Agile processes promote sustainable development. The sponsors, developers, and users should be able to maintain a constant pace indefinitely.",
	},
	{
		ID:          9,
		Text:        "Do we support technical excellence and good design that allows for future changes?",
		Category:    CategoryTechnical,
		Description: "Continuous attention to technical excellence and good design enhances agility and makes future changes easier.",
	},
	{
		ID:          10,
		Text:        "Are we maximizing the amount of work not done — namely, doing as little as necessary to fulfill the goal of the project?",
		Category:    CategoryOptimization,
		Description: "Simplicity, the art of maximizing the amount of work not done, is essential. Focus on what delivers the most value.",
	},
	{
		ID:          11,
		Text:        "Is this development team self-organizing and self-managing? Does it have the freedom to succeed?",
		Category:    CategoryTeam,
		Description: "The best architectures, requirements, and designs emerge from self-organizing teams that have autonomy.",
	},
	{
		ID:          12,
		Text:        "Are we reflecting at regular intervals and adjusting our behavior accordingly?",
		Category:    CategoryAdaptation,
		Description: "At regular intervals, the team reflects on how to become more effective, then tunes and adjusts its behavior accordingly.",
	},
}

// Questions returns all questions in id order.
func Questions() []Question {
	return questions
}

// Count returns the number of questions in the catalog.
func Count() int {
	return len(questions)
}

// QuestionByID returns the question with the given id, or false if no such
// question exists.
func QuestionByID(id int) (Question, bool) {
	for _, q := range questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// QuestionsInCategory returns the questions tagged with the given category,
// in id order.
func QuestionsInCategory(c Category) []Question {
	var out []Question
	for _, q := range questions {
		if q.Category == c {
			out = append(out, q)
		}
	}
	return out
}

// RatingLevel is one step of the fixed five-level rating scale.
type RatingLevel struct {
	Score       int
	Label       string
	Description string
}

var ratingScale = []RatingLevel{
	{Score: 1, Label: "Not at all (1)", Description: "We don't practice this at all or have significant issues in this area"},
	{Score: 2, Label: "Somewhat (2)", Description: "We occasionally practice this but have notable gaps or challenges"},
	{Score: 3, Label: "Moderately (3)", Description: "We implement this fairly well but have room for improvement"},
	{Score: 4, Label: "Mostly (4)", Description: "We do this consistently with only minor areas for improvement"},
	{Score: 5, Label: "Completely (5)", Description: "We excel in this area and consider it a strength of our team"},
}

// RatingScale returns the five rating levels in score order 1..5.
func RatingScale() []RatingLevel {
	return ratingScale
}
