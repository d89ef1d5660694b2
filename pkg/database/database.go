package database

import (
	"fmt"
	"log"
	"thesistrack_backend/internal/config"
	"thesistrack_backend/internal/model"
	"thesistrack_backend/internal/progression"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
		cfg.Database.ParseTime,
	)

	logLevel := logger.Info
	if cfg.Server.Mode == "release" {
		logLevel = logger.Warn
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// In release mode migration only runs when forced from the command line.
	if cfg.Server.Mode == "release" && !cfg.ForceMigrate {
		return db, nil
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Session{},
		&model.StudentRecord{},
		&model.StageApproval{},
		&model.RubricSet{},
		&model.RubricCriterion{},
		&model.ScoreEntry{},
		&model.PanelAssignment{},
		&model.DefenseSchedule{},
		&model.Notification{},
		&model.Manuscript{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := seedDefaults(db); err != nil {
		return nil, err
	}

	return db, nil
}

// seedDefaults creates the bootstrap admin account and, for the active
// session, draft external-defense rubrics so coordinators have a starting
// point to edit rather than an empty screen.
func seedDefaults(db *gorm.DB) error {
	var count int64
	db.Model(&model.User{}).Where("role = ?", model.Admin).Count(&count)
	if count == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := &model.User{
			Name:     "System Administrator",
			Email:    "admin@thesistrack.local",
			Password: string(hashed),
			Role:     model.Admin,
		}
		if err := db.Create(admin).Error; err != nil {
			return err
		}
		log.Println("Seeded default admin account (admin@thesistrack.local)")
	}

	var sessionCount int64
	db.Model(&model.Session{}).Count(&sessionCount)
	if sessionCount == 0 {
		return nil
	}

	var active model.Session
	if err := db.Where("active = ?", true).First(&active).Error; err != nil {
		return nil
	}

	for _, program := range []progression.Program{progression.ProgramMSc, progression.ProgramPhD} {
		var n int64
		db.Model(&model.RubricSet{}).
			Where("session_id = ? AND program = ? AND stage = ?", active.ID, string(program), string(progression.StageExternalDefense)).
			Count(&n)
		if n > 0 {
			continue
		}
		set := &model.RubricSet{
			SessionID: active.ID,
			Program:   string(program),
			Stage:     string(progression.StageExternalDefense),
			Status:    model.RubricDraft,
			Criteria: []model.RubricCriterion{
				{Title: "Presentation", Percentage: 20, Position: 0},
				{Title: "Content", Percentage: 40, Position: 1},
				{Title: "Defense Handling", Percentage: 40, Position: 2},
			},
		}
		if err := db.Create(set).Error; err != nil {
			return err
		}
	}
	return nil
}
