package engine

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"onboard/models"
	"onboard/models/catalog"
	"onboard/models/plan"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database with the full schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps the shared in-memory database alive for the test
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Instructor{},
		&catalog.StepTemplate{},
		&catalog.StepTemplateModule{},
		&catalog.ContentModule{},
		&catalog.ModuleQuizQuestion{},
		&catalog.ModuleChecklistItem{},
		&catalog.ModuleFileRequirement{},
		&plan.OnboardingStep{},
		&plan.Task{},
		&plan.TaskQuizQuestion{},
		&plan.TaskChecklistItem{},
		&plan.TaskFileRequirement{},
		&plan.QuizAnswer{},
		&plan.TaskFileUpload{},
	))

	return db
}

func createInstructor(t *testing.T, db *gorm.DB, classification string) *models.Instructor {
	t.Helper()

	instructor := models.Instructor{
		Name:           "Jamie Instructor",
		Email:          fmt.Sprintf("jamie+%d@example.com", time.Now().UnixNano()),
		Classification: classification,
		StartDate:      time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		CurrentStep:    1,
	}
	require.NoError(t, db.Create(&instructor).Error)
	return &instructor
}

func createTemplate(t *testing.T, db *gorm.DB, title string, defaultOffset *int) *catalog.StepTemplate {
	t.Helper()

	tmpl := catalog.StepTemplate{
		Title:            title,
		Emoji:            "📌",
		Description:      title + " description",
		DefaultDayOffset: defaultOffset,
		IsActive:         true,
	}
	require.NoError(t, db.Create(&tmpl).Error)
	return &tmpl
}

func jsonChoices(t *testing.T, options ...string) datatypes.JSON {
	t.Helper()

	data, err := json.Marshal(options)
	require.NoError(t, err)
	return datatypes.JSON(data)
}

func createDocumentModule(t *testing.T, db *gorm.DB, name string, questions int) *catalog.ContentModule {
	t.Helper()

	module := catalog.ContentModule{
		Name:        name,
		Description: name + " description",
		Kind:        catalog.KindDocument,
		BodyContent: "Read this carefully.",
	}
	require.NoError(t, db.Create(&module).Error)

	for i := 0; i < questions; i++ {
		q := catalog.ModuleQuizQuestion{
			ContentModuleID: module.ID,
			Prompt:          fmt.Sprintf("Question %d?", i+1),
			Choices:         jsonChoices(t, "Right", "Wrong", "Also wrong"),
			AnswerIndex:     0,
			OrderIndex:      i + 1,
		}
		require.NoError(t, db.Create(&q).Error)
	}
	return &module
}

func createVideoModule(t *testing.T, db *gorm.DB, name string) *catalog.ContentModule {
	t.Helper()

	module := catalog.ContentModule{
		Name:        name,
		Description: name + " description",
		Kind:        catalog.KindVideo,
		VideoURL:    "https://videos.example.com/" + name,
		VideoLength: 300,
	}
	require.NoError(t, db.Create(&module).Error)
	return &module
}

func createChecklistModule(t *testing.T, db *gorm.DB, name string, labels ...string) *catalog.ContentModule {
	t.Helper()

	module := catalog.ContentModule{
		Name: name,
		Kind: catalog.KindChecklist,
	}
	require.NoError(t, db.Create(&module).Error)

	for i, label := range labels {
		item := catalog.ModuleChecklistItem{
			ContentModuleID: module.ID,
			Label:           label,
			OrderIndex:      i + 1,
		}
		require.NoError(t, db.Create(&item).Error)
	}
	return &module
}

func createFileModule(t *testing.T, db *gorm.DB, name string, requirements ...string) *catalog.ContentModule {
	t.Helper()

	module := catalog.ContentModule{
		Name: name,
		Kind: catalog.KindFileUpload,
	}
	require.NoError(t, db.Create(&module).Error)

	for _, label := range requirements {
		req := catalog.ModuleFileRequirement{
			ContentModuleID: module.ID,
			Label:           label,
			AcceptedTypes:   ".pdf",
		}
		require.NoError(t, db.Create(&req).Error)
	}
	return &module
}

// loadSteps returns the instructor's live steps in position order with their
// live tasks in display order.
func loadSteps(t *testing.T, db *gorm.DB, instructorID uint) []plan.OnboardingStep {
	t.Helper()

	var steps []plan.OnboardingStep
	require.NoError(t, db.
		Where("instructor_id = ? AND is_deleted = ?", instructorID, false).
		Order("position asc").
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_deleted = ?", false).Order("order_index asc")
		}).
		Find(&steps).Error)
	return steps
}

func reloadInstructor(t *testing.T, db *gorm.DB, id uint) *models.Instructor {
	t.Helper()

	var instructor models.Instructor
	require.NoError(t, db.First(&instructor, id).Error)
	return &instructor
}

// completeTask force-completes a task directly and recomputes, standing in for
// the instructor finishing the work.
func completeTask(t *testing.T, db *gorm.DB, taskID uint, instructorID uint) {
	t.Helper()

	require.NoError(t, db.Model(&plan.Task{}).Where("id = ?", taskID).Update("status", plan.StatusCompleted).Error)
	require.NoError(t, RecomputeProgress(db, instructorID))
}
