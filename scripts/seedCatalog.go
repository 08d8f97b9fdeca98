package main

import (
	"encoding/json"
	"log"

	"onboard/config"
	"onboard/database"
	"onboard/models/catalog"

	"gorm.io/datatypes"
)

// Seeds a starter catalog of step templates and content modules so a fresh
// environment has something to materialize plans from.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	var count int64
	db.Model(&catalog.StepTemplate{}).Where("is_deleted = ?", false).Count(&count)
	if count > 0 {
		log.Fatal("Catalog already seeded, aborting.")
	}

	offset := func(days int) *int { return &days }

	steps := []catalog.StepTemplate{
		{Title: "Paperwork", Emoji: "📝", Description: "Contracts, tax forms and IT accounts.", OrderIndex: 1, IsActive: true},
		{Title: "Organization", Emoji: "🏢", Description: "Who is who and how the program is run.", OrderIndex: 2, IsActive: true},
		{Title: "Curriculum Basics", Emoji: "📚", Description: "The teaching materials and how to use them.", OrderIndex: 3, IsActive: true},
		{Title: "Classroom Setup", Emoji: "🎒", Description: "Preparing your room and equipment.", DefaultDayOffset: offset(-6), OrderIndex: 4, IsActive: true},
		{Title: "First Week Prep", Emoji: "🚀", Description: "Everything due before day one.", DefaultDayOffset: offset(-2), OrderIndex: 5, IsActive: true},
	}
	for i := range steps {
		if err := db.Create(&steps[i]).Error; err != nil {
			log.Fatalf("Failed to seed step template: %v", err)
		}
	}

	choices := func(options ...string) datatypes.JSON {
		data, _ := json.Marshal(options)
		return datatypes.JSON(data)
	}

	modules := []catalog.ContentModule{
		{
			Name:        "Read the Instructor Handbook",
			Description: "The handbook covers policies, expectations and escalation paths.",
			Kind:        catalog.KindDocument,
			BodyContent: "Welcome to the program. Please read every section of the handbook carefully...",
			QuizQuestions: []catalog.ModuleQuizQuestion{
				{Prompt: "Who do you contact first for schedule changes?", Choices: choices("Your PM", "The principal", "Another instructor"), AnswerIndex: 0, OrderIndex: 1},
				{Prompt: "How far in advance must absences be reported?", Choices: choices("1 day", "3 days", "1 week"), AnswerIndex: 1, OrderIndex: 2},
			},
		},
		{
			Name:        "Watch Setup Video",
			Description: "A walkthrough of the classroom management system.",
			Kind:        catalog.KindVideo,
			VideoURL:    "https://videos.example.com/classroom-setup",
			VideoLength: 540,
			QuizQuestions: []catalog.ModuleQuizQuestion{
				{Prompt: "Where do you record attendance?", Choices: choices("The portal", "A spreadsheet", "Paper forms"), AnswerIndex: 0, OrderIndex: 1},
			},
		},
		{
			Name:        "Upload Signed Contract",
			Description: "Upload your signed contract and banking form.",
			Kind:        catalog.KindFileUpload,
			FileRequirements: []catalog.ModuleFileRequirement{
				{Label: "Signed contract", AcceptedTypes: ".pdf"},
				{Label: "Banking form", AcceptedTypes: ".pdf,.jpg,.png"},
			},
		},
		{
			Name:        "Classroom Readiness Checklist",
			Description: "Confirm your room is ready for the first session.",
			Kind:        catalog.KindChecklist,
			ChecklistItems: []catalog.ModuleChecklistItem{
				{Label: "Projector tested", OrderIndex: 1},
				{Label: "Seating arranged", OrderIndex: 2},
				{Label: "Materials printed", OrderIndex: 3},
			},
		},
	}
	for i := range modules {
		if err := db.Create(&modules[i]).Error; err != nil {
			log.Fatalf("Failed to seed content module: %v", err)
		}
	}

	// Default links for the legacy initialization path
	links := []catalog.StepTemplateModule{
		{StepTemplateID: steps[0].ID, ContentModuleID: modules[2].ID, OrderIndex: 1},
		{StepTemplateID: steps[1].ID, ContentModuleID: modules[0].ID, OrderIndex: 1},
		{StepTemplateID: steps[1].ID, ContentModuleID: modules[1].ID, OrderIndex: 2},
		{StepTemplateID: steps[3].ID, ContentModuleID: modules[3].ID, OrderIndex: 1},
	}
	for i := range links {
		if err := db.Create(&links[i]).Error; err != nil {
			log.Fatalf("Failed to seed step template module link: %v", err)
		}
	}

	log.Printf("Seeded %d step templates and %d content modules.", len(steps), len(modules))
}
