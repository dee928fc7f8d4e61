package main

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"tether-backend/internal/config"
	"tether-backend/internal/database"
	"tether-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the seed file schema
type UserData struct {
	Email       string  `yaml:"email"`
	DisplayName string  `yaml:"display_name"`
	AvatarURL   string  `yaml:"avatar_url,omitempty"`
	Role        string  `yaml:"role,omitempty"`
	TotalLinks  int     `yaml:"total_links,omitempty"`
	AvgResponse float64 `yaml:"average_response_time,omitempty"`
	Rate        float64 `yaml:"response_rate,omitempty"`
}

type TeamMemberData struct {
	Email string `yaml:"email"`
	Role  string `yaml:"role,omitempty"`
}

type TeamData struct {
	Name           string           `yaml:"name"`
	ProductName    string           `yaml:"product_name,omitempty"`
	ProductVersion string           `yaml:"product_version,omitempty"`
	OwnerEmail     string           `yaml:"owner_email"`
	Status         string           `yaml:"status,omitempty"`
	Members        []TeamMemberData `yaml:"members,omitempty"`
	AvgResponse    float64          `yaml:"average_response_time,omitempty"`
	Rate           float64          `yaml:"response_rate,omitempty"`
}

type LinkData struct {
	TeamName       string   `yaml:"team_name"`
	Title          string   `yaml:"title"`
	Purpose        string   `yaml:"purpose,omitempty"`
	MeetingType    string   `yaml:"meeting_type,omitempty"`
	InitiatorEmail string   `yaml:"initiator_email"`
	Participants   []string `yaml:"participants,omitempty"`
	ScheduledAt    string   `yaml:"scheduled_at,omitempty"`
	Completed      bool     `yaml:"completed,omitempty"`
	Duration       int      `yaml:"duration_minutes,omitempty"`
	Notes          string   `yaml:"notes,omitempty"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type LinksFile struct {
	Links []LinkData `yaml:"links"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress GORM logs including "record not found" probes
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	teams, err := loadTeams(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	links, err := loadLinks(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load links: %w", err)
	}

	// Create users first; teams and links reference them by email
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		userMap[strings.ToLower(userData.Email)] = user
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(users))

	teamMap := make(map[string]*models.Team)
	teamCreated := 0
	for _, teamData := range teams {
		team, created, err := createTeam(db, teamData, userMap)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		teamMap[teamData.Name] = team
		if created {
			teamCreated++
		}
	}
	log.Printf("📋 Teams: %d created, %d total", teamCreated, len(teams))

	linkCreated := 0
	for _, linkData := range links {
		_, created, err := createLink(db, linkData, teamMap, userMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create link %s: %v", linkData.Title, err)
			continue // Continue with other links
		}
		if created {
			linkCreated++
		}
	}
	log.Printf("📋 Links: %d created, %d total", linkCreated, len(links))

	return nil
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "users") {
			var file UsersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allUsers = append(allUsers, file.Users...)
		}
		return nil
	})

	return allUsers, err
}

func loadTeams(dataDir string) ([]TeamData, error) {
	var allTeams []TeamData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "teams") {
			var file TeamsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTeams = append(allTeams, file.Teams...)
		}
		return nil
	})

	return allTeams, err
}

func loadLinks(dataDir string) ([]LinkData, error) {
	var allLinks []LinkData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "links") {
			var file LinksFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allLinks = append(allLinks, file.Links...)
		}
		return nil
	})

	return allLinks, err
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	email := strings.ToLower(userData.Email)

	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			role := models.MemberRoleDev
			if userData.Role != "" {
				role = models.MemberRole(userData.Role)
			}

			user = models.User{
				Email:       email,
				DisplayName: userData.DisplayName,
				AvatarURL:   userData.AvatarURL,
				Role:        role,
				Stats: models.UserStats{
					TotalLinks:          userData.TotalLinks,
					AverageResponseTime: userData.AvgResponse,
					ResponseRate:        userData.Rate,
				},
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}

			return &user, true, nil
		}
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	return &user, false, nil
}

func createTeam(db *gorm.DB, teamData TeamData, userMap map[string]*models.User) (*models.Team, bool, error) {
	owner := userMap[strings.ToLower(teamData.OwnerEmail)]
	if owner == nil {
		return nil, false, fmt.Errorf("owner %s not found in users seed", teamData.OwnerEmail)
	}

	var team models.Team
	if err := db.Where("name = ?", teamData.Name).First(&team).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			status := models.TeamStatusActive
			if teamData.Status != "" {
				status = models.TeamStatus(teamData.Status)
			}

			team = models.Team{
				Name:           teamData.Name,
				ProductName:    teamData.ProductName,
				ProductVersion: teamData.ProductVersion,
				OwnerID:        owner.ID,
				Status:         status,
				Stats: models.TeamStats{
					AverageResponseTime: teamData.AvgResponse,
					ResponseRate:        teamData.Rate,
				},
			}
			team.AddMember(owner.ID, models.MemberRoleOwner)

			for _, memberData := range teamData.Members {
				member := userMap[strings.ToLower(memberData.Email)]
				if member == nil {
					log.Printf("⚠️  Warning: member %s of team %s not found in users seed", memberData.Email, teamData.Name)
					continue
				}
				role := models.MemberRoleDev
				if memberData.Role != "" {
					role = models.MemberRole(memberData.Role)
				}
				team.AddMember(member.ID, role)
			}

			if err := db.Create(&team).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create team: %w", err)
			}

			// Mirror the membership on each seeded user
			for i := range team.Members {
				for _, user := range userMap {
					if user.ID != team.Members[i].UserID {
						continue
					}
					role := models.UserTeamRoleMember
					if team.Members[i].Role == models.MemberRoleOwner {
						role = models.UserTeamRoleOwner
					}
					user.JoinTeam(team.ID, role)
					if err := db.Save(user).Error; err != nil {
						return nil, false, fmt.Errorf("failed to update user %s: %w", user.Email, err)
					}
				}
			}

			return &team, true, nil
		}
		return nil, false, fmt.Errorf("failed to query team: %w", err)
	}

	return &team, false, nil
}

func createLink(db *gorm.DB, linkData LinkData, teamMap map[string]*models.Team, userMap map[string]*models.User) (*models.Link, bool, error) {
	team := teamMap[linkData.TeamName]
	if team == nil {
		return nil, false, fmt.Errorf("team %s not found in teams seed", linkData.TeamName)
	}
	initiator := userMap[strings.ToLower(linkData.InitiatorEmail)]
	if initiator == nil {
		return nil, false, fmt.Errorf("initiator %s not found in users seed", linkData.InitiatorEmail)
	}

	var link models.Link
	if err := db.Where("team_id = ? AND title = ?", team.ID, linkData.Title).First(&link).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			meetingType := models.MeetingTypeSync
			if linkData.MeetingType != "" {
				meetingType = models.MeetingType(linkData.MeetingType)
			}

			link = models.Link{
				TeamID:      team.ID,
				Title:       linkData.Title,
				Purpose:     linkData.Purpose,
				MeetingType: meetingType,
				Status:      models.LinkStatusPending,
			}
			if err := link.AddParticipant(initiator.ID, models.ParticipantRoleInitiator); err != nil {
				return nil, false, err
			}
			for _, email := range linkData.Participants {
				user := userMap[strings.ToLower(email)]
				if user == nil {
					log.Printf("⚠️  Warning: participant %s of link %s not found in users seed", email, linkData.Title)
					continue
				}
				if err := link.AddParticipant(user.ID, models.ParticipantRoleParticipant); err != nil {
					log.Printf("⚠️  Warning: skipping participant %s of link %s: %v", email, linkData.Title, err)
				}
			}

			if linkData.ScheduledAt != "" {
				at, err := time.Parse(time.RFC3339, linkData.ScheduledAt)
				if err != nil {
					return nil, false, fmt.Errorf("invalid scheduled_at for link %s: %w", linkData.Title, err)
				}
				if err := link.Schedule(at); err != nil {
					return nil, false, err
				}
			}
			if linkData.Completed {
				if err := link.Start(); err != nil {
					return nil, false, err
				}
				if err := link.Complete(linkData.Duration, linkData.Notes); err != nil {
					return nil, false, err
				}
			}

			if err := db.Create(&link).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create link: %w", err)
			}

			return &link, true, nil
		}
		return nil, false, fmt.Errorf("failed to query link: %w", err)
	}

	return &link, false, nil
}
