// cmd/seed applies the schema and loads a development data set:
// two coaches with one age group each, ten players with active plans,
// and four sessions scheduled for today.
package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"time"

	"coachpad/internal/models"
	"coachpad/internal/models/config"
	"coachpad/internal/repository"
	agegroup_repo "coachpad/internal/repository/agegroup"
	coach_repo "coachpad/internal/repository/coach"
	plan_repo "coachpad/internal/repository/plan"
	player_repo "coachpad/internal/repository/player"
	session_repo "coachpad/internal/repository/session"
	database "coachpad/pkg"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

type seedPlayer struct {
	name  string
	email string
	phone string
	dob   string
}

var u12Players = []seedPlayer{
	{"Alex Thompson", "alex.thompson@email.com", "+1234567801", "2013-03-15"},
	{"Emma Wilson", "emma.wilson@email.com", "+1234567802", "2013-07-22"},
	{"Marcus Rodriguez", "marcus.rodriguez@email.com", "+1234567803", "2012-11-08"},
	{"Lily Chen", "lily.chen@email.com", "+1234567804", "2013-01-30"},
	{"Oliver Davis", "oliver.davis@email.com", "+1234567805", "2012-09-12"},
}

var u16Players = []seedPlayer{
	{"Jake Morrison", "jake.morrison@email.com", "+1234567806", "2009-05-18"},
	{"Sofia Martinez", "sofia.martinez@email.com", "+1234567807", "2008-12-03"},
	{"Ryan O'Connor", "ryan.oconnor@email.com", "+1234567808", "2009-08-27"},
	{"Zoe Kim", "zoe.kim@email.com", "+1234567809", "2008-04-14"},
	{"Ethan Brown", "ethan.brown@email.com", "+1234567810", "2009-10-06"},
}

func main() {
	if err := config.Load(); err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.NewPostgres(config.AppConfig)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	schema, err := os.ReadFile("migrations/schema.sql")
	if err != nil {
		log.Fatalf("read schema: %v", err)
	}
	if _, err := db.ExecContext(ctx, string(schema)); err != nil {
		log.Fatalf("apply schema: %v", err)
	}

	// Clear existing data; attendance and plans go via cascade.
	if _, err := db.ExecContext(ctx, `TRUNCATE coaches CASCADE`); err != nil {
		log.Fatalf("truncate: %v", err)
	}

	coaches := coach_repo.NewCoachRepository(db)
	groups := agegroup_repo.NewAgeGroupRepository(db)
	players := player_repo.NewPlayerRepository(db)
	plans := plan_repo.NewTrainingPlanRepository(db)
	sessions := session_repo.NewSessionRepository(db)

	coach1 := seedCoach(ctx, coaches, "coach1", "John Smith", "john.smith@football.com")
	coach2 := seedCoach(ctx, coaches, "coach2", "Sarah Johnson", "sarah.johnson@football.com")

	u12 := &models.AgeGroup{
		ID:          uuid.New(),
		Name:        "Under 12",
		Description: "Players aged 10-12 years",
		MinAge:      10,
		MaxAge:      12,
		CoachID:     coach1.ID,
	}
	u16 := &models.AgeGroup{
		ID:          uuid.New(),
		Name:        "Under 16",
		Description: "Players aged 13-16 years",
		MinAge:      13,
		MaxAge:      16,
		CoachID:     coach2.ID,
	}
	for _, g := range []*models.AgeGroup{u12, u16} {
		if err := groups.Create(ctx, g); err != nil {
			log.Fatalf("create age group %s: %v", g.Name, err)
		}
	}

	planStart, _ := time.Parse("2006-01-02", "2025-01-01")
	planEnd, _ := time.Parse("2006-01-02", "2025-01-31")

	seedRoster := func(group *models.AgeGroup, roster []seedPlayer) {
		for _, sp := range roster {
			dob, err := time.Parse("2006-01-02", sp.dob)
			if err != nil {
				log.Fatalf("parse date of birth for %s: %v", sp.name, err)
			}
			p := &models.Player{
				ID:          uuid.New(),
				Name:        sp.name,
				Email:       sp.email,
				Phone:       sp.phone,
				DateOfBirth: dob,
				AgeGroupID:  group.ID,
			}
			if err := players.Create(ctx, p); err != nil {
				log.Fatalf("create player %s: %v", sp.name, err)
			}

			plan := &models.TrainingPlan{
				ID:                uuid.New(),
				PlayerID:          p.ID,
				SessionsBooked:    12,
				SessionsUsed:      rand.Intn(5),
				ComplimentaryUsed: rand.Intn(2),
				StartDate:         planStart,
				EndDate:           planEnd,
				IsActive:          true,
			}
			if err := plans.Create(ctx, plan); err != nil {
				log.Fatalf("create plan for %s: %v", sp.name, err)
			}
		}
	}
	seedRoster(u12, u12Players)
	seedRoster(u16, u16Players)

	now := time.Now()
	morning := time.Date(now.Year(), now.Month(), now.Day(), 9, 0, 0, 0, now.Location())
	evening := morning.Add(9 * time.Hour)

	for _, s := range []*models.TrainingSession{
		{ID: uuid.New(), Date: morning, TimeSlot: models.TimeSlotMorning, Status: models.SessionScheduled, MaxPlayers: 20, AgeGroupID: u12.ID},
		{ID: uuid.New(), Date: evening, TimeSlot: models.TimeSlotEvening, Status: models.SessionScheduled, MaxPlayers: 20, AgeGroupID: u12.ID},
		{ID: uuid.New(), Date: morning, TimeSlot: models.TimeSlotMorning, Status: models.SessionScheduled, MaxPlayers: 20, AgeGroupID: u16.ID},
		{ID: uuid.New(), Date: evening, TimeSlot: models.TimeSlotEvening, Status: models.SessionScheduled, MaxPlayers: 20, AgeGroupID: u16.ID},
	} {
		if err := sessions.Create(ctx, s); err != nil {
			log.Fatalf("create session: %v", err)
		}
	}

	log.Println("database seeded")
	log.Println("coach1 / password123 (Under 12)")
	log.Println("coach2 / password123 (Under 16)")
}

func seedCoach(ctx context.Context, repo repository.CoachRepository, username, name, email string) *models.Coach {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}
	coach := &models.Coach{
		ID:       uuid.New(),
		Username: username,
		Password: string(hash),
		Name:     name,
		Email:    email,
	}
	if err := repo.Create(ctx, coach); err != nil {
		log.Fatalf("create coach %s: %v", username, err)
	}
	return coach
}
