package models

// PlanRequest is one AI-plan form submission. Days arrives as the raw
// select value ("1".."6"). Goal "other" switches the prompt to the
// free-text CustomGoal. Mandatory-field validation happens in the
// service so the error message can be localized per Lang.
type PlanRequest struct {
	Goal        string `json:"goal"`
	CustomGoal  string `json:"customGoal"`
	Level       string `json:"level"`
	Days        string `json:"days"`
	Location    string `json:"location"`
	Equipment   string `json:"equipment"`
	Limitations string `json:"limitations"`
	Lang        string `json:"lang"`
}

// WorkoutPlan is the structured plan shape the model is instructed to
// produce.
type WorkoutPlan struct {
	Days []DayPlan `json:"days"`
	Tips []string  `json:"tips"`
}

// DayPlan is one training day of a structured plan.
type DayPlan struct {
	Day      int            `json:"day"`
	Title    string         `json:"title"`
	Focus    string         `json:"focus"`
	Warmup   Routine        `json:"warmup"`
	Main     []MainExercise `json:"main"`
	Cooldown Routine        `json:"cooldown"`
}

// Routine is a warm-up or cool-down block.
type Routine struct {
	Duration  string   `json:"duration"`
	Exercises []string `json:"exercises"`
}

// MainExercise is one main-set entry. Reps stays free text so the model
// can express ranges ("12-15") and time-based work ("30 сек").
type MainExercise struct {
	Name string `json:"name"`
	Sets int    `json:"sets"`
	Reps string `json:"reps"`
}

// PlanResult is a tagged union over the two interpretations of the
// model output: exactly one of Structured and Raw is populated. The
// opaque branch is not an error state; the model's output format is not
// contractually guaranteed.
type PlanResult struct {
	Structured *WorkoutPlan
	Raw        string
}

// IsStructured reports which branch of the union is populated.
func (r PlanResult) IsStructured() bool {
	return r.Structured != nil
}

// Plan response formats on the wire.
const (
	PlanFormatJSON = "json"
	PlanFormatText = "text"
)

// GeneratePlanResponse is the wire response of the plan endpoint.
// Workout holds either the structured plan or the raw model text,
// discriminated by Format.
type GeneratePlanResponse struct {
	Workout any    `json:"workout"`
	Format  string `json:"format"`
}

// ToResponse flattens the union into the wire shape.
func (r PlanResult) ToResponse() GeneratePlanResponse {
	if r.IsStructured() {
		return GeneratePlanResponse{Workout: r.Structured, Format: PlanFormatJSON}
	}
	return GeneratePlanResponse{Workout: r.Raw, Format: PlanFormatText}
}
