package models

// Injury is one entry of the questionnaire's injury list.
type Injury struct {
	Area    string `json:"area"`
	Type    string `json:"type"`
	When    string `json:"when"`
	Current string `json:"current"` // "yes" while the injury is still relevant
}

// IntakeRecord is one client questionnaire submission, received as the
// flat object the multi-step form accumulates. Every field is optional:
// absence renders as a locale-appropriate placeholder in the formatted
// notification, never as a blank line. Nothing here is persisted; the
// record lives only for the duration of the request.
type IntakeRecord struct {
	// Basic data
	Name       string `json:"name"`
	BirthDay   string `json:"birthDay"`
	BirthMonth string `json:"birthMonth"`
	BirthYear  string `json:"birthYear"`
	Height     string `json:"height"`
	Weight     string `json:"weight"`
	WorkType   string `json:"workType"`

	// Goals
	Goals           []string `json:"goals"`
	GoalDescription string   `json:"goalDescription"`
	GoalTimeframe   string   `json:"goalTimeframe"`
	Motivation      string   `json:"motivation"`

	// Health
	HealthConditions  []string `json:"healthConditions"`
	DiabetesType      string   `json:"diabetesType"`
	TakingMedications string   `json:"takingMedications"`
	Medications       string   `json:"medications"`
	HasInjuries       string   `json:"hasInjuries"`
	Injuries          []Injury `json:"injuries"`
	PainDescription   string   `json:"painDescription"`
	ConsultingDoctor  string   `json:"consultingDoctor"`
	DoctorApproval    string   `json:"doctorApproval"`
	DoctorLimitations string   `json:"doctorLimitations"`

	// Training history
	ActivityLevel     string   `json:"activityLevel"`
	TrainingDuration  string   `json:"trainingDuration"`
	WorkedWithTrainer string   `json:"workedWithTrainer"`
	TrainerExperience string   `json:"trainerExperience"`
	Activities        []string `json:"activities"`
	OtherActivity     string   `json:"otherActivity"`

	// Preferences
	PreferredTraining []string `json:"preferredTraining"`
	AvoidInTraining   string   `json:"avoidInTraining"`

	// Lifestyle
	SleepHours       string   `json:"sleepHours"`
	SleepQuality     string   `json:"sleepQuality"`
	BedTime          string   `json:"bedTime"`
	WakeTime         string   `json:"wakeTime"`
	StressLevel      string   `json:"stressLevel"`
	MealsPerDay      string   `json:"mealsPerDay"`
	Alcohol          string   `json:"alcohol"`
	Smoking          string   `json:"smoking"`
	CigarettesPerDay string   `json:"cigarettesPerDay"`
	WaterIntake      string   `json:"waterIntake"`
	CoffeeTeaPerDay  string   `json:"coffeeTeaPerDay"`
	Allergies        string   `json:"allergies"`
	SpecialDiet      []string `json:"specialDiet"`
	OtherDiet        string   `json:"otherDiet"`

	// Logistics
	TrainingFrequency string   `json:"trainingFrequency"`
	PreferredDays     []string `json:"preferredDays"`
	PreferredTimes    []string `json:"preferredTimes"`
	TrainingLocation  string   `json:"trainingLocation"`
	GymName           string   `json:"gymName"`

	// Additional
	AdditionalInfo      string `json:"additionalInfo"`
	TrainerExpectations string `json:"trainerExpectations"`

	// Lang selects placeholder language for the notification; defaults
	// to Russian, the trainer's working language.
	Lang string `json:"lang"`
}

// IntakeResponse is the wire response of the questionnaire endpoint.
type IntakeResponse struct {
	Success bool   `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
}
