package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"parts-inventory-backend/internal/config"
	"parts-inventory-backend/internal/database"
	"parts-inventory-backend/internal/database/models"
	apperrors "parts-inventory-backend/internal/errors"
	"parts-inventory-backend/internal/repository"
	"parts-inventory-backend/internal/service"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ComponentData is one stocked part in a components YAML file
type ComponentData struct {
	Name                   string        `yaml:"name"`
	Manufacturer           string        `yaml:"manufacturer"`
	ManufacturerPartNumber string        `yaml:"manufacturer_part_number"`
	Package                string        `yaml:"package"`
	Location               *LocationData `yaml:"location,omitempty"`
	Quantity               int           `yaml:"quantity"`
	ReorderPoint           *int          `yaml:"reorder_point,omitempty"`
}

// LocationData is the storage slot of a component
type LocationData struct {
	Rack   string `yaml:"rack"`
	Drawer string `yaml:"drawer,omitempty"`
	Box    string `yaml:"box,omitempty"`
}

// ItemData is one requirement line of a project. Component refers to a component by name.
type ItemData struct {
	Component  string `yaml:"component,omitempty"`
	CustomName string `yaml:"custom_name,omitempty"`
	Quantity   int    `yaml:"quantity"`
	Type       string `yaml:"type,omitempty"`
}

// ProjectData is a project with its requirement lines
type ProjectData struct {
	Name           string     `yaml:"name"`
	Description    string     `yaml:"description"`
	EstimatedHours float64    `yaml:"estimated_hours"`
	Items          []ItemData `yaml:"items"`
}

type ComponentsFile struct {
	Components []ComponentData `yaml:"components"`
}

type ProjectsFile struct {
	Projects []ProjectData `yaml:"projects"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseDriver, cfg.DSN(), 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(context.Background(), db, cfg, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

func connectWithRetry(driver, dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress SQL and "record not found" logs during loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(driver, dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// loadDataFromYAMLFiles creates the components and projects that do not exist yet.
// Everything goes through the services so initial stock lands in the ledger.
func loadDataFromYAMLFiles(ctx context.Context, db *gorm.DB, cfg *config.Config, dataDir string) error {
	components, err := loadComponents(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load components: %w", err)
	}

	projects, err := loadProjects(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}

	store := repository.NewStore(db)
	locks := service.NewProjectLocks()
	validator := service.NewValidator()
	componentService := service.NewComponentService(store, validator)
	locationService := service.NewLocationService(store, validator)
	planner := service.NewPlanningService(store, locks, cfg.AllocationReserveAcrossProjects)
	projectService := service.NewProjectService(store, planner, locks, validator)

	locationMap := make(map[LocationData]uuid.UUID)
	for _, componentData := range components {
		if componentData.Location == nil {
			continue
		}
		slot := *componentData.Location
		if _, ok := locationMap[slot]; ok {
			continue
		}
		id, err := ensureLocation(ctx, store, locationService, slot)
		if err != nil {
			return fmt.Errorf("failed to create location for %s: %w", componentData.Name, err)
		}
		locationMap[slot] = id
	}
	log.Printf("🗄️  Locations: %d in use", len(locationMap))

	componentMap := make(map[string]uuid.UUID)
	componentCreated := 0
	for _, componentData := range components {
		id, created, err := createComponent(ctx, db, componentService, componentData, locationMap)
		if err != nil {
			return fmt.Errorf("failed to create component %s: %w", componentData.Name, err)
		}
		componentMap[componentData.Name] = id
		if created {
			componentCreated++
		}
	}
	log.Printf("📦 Components: %d created, %d total", componentCreated, len(components))

	projectCreated := 0
	for _, projectData := range projects {
		created, err := createProject(ctx, db, projectService, projectData, componentMap)
		if err != nil {
			return fmt.Errorf("failed to create project %s: %w", projectData.Name, err)
		}
		if created {
			projectCreated++
		}
	}
	log.Printf("🛠️  Projects: %d created, %d total", projectCreated, len(projects))

	return nil
}

func loadYAMLFiles(dataDir, kind string, visit func(data []byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), kind) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := visit(data); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	})
}

func loadComponents(dataDir string) ([]ComponentData, error) {
	var allComponents []ComponentData
	err := loadYAMLFiles(dataDir, "components", func(data []byte) error {
		var file ComponentsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allComponents = append(allComponents, file.Components...)
		return nil
	})
	return allComponents, err
}

func loadProjects(dataDir string) ([]ProjectData, error) {
	var allProjects []ProjectData
	err := loadYAMLFiles(dataDir, "projects", func(data []byte) error {
		var file ProjectsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allProjects = append(allProjects, file.Projects...)
		return nil
	})
	return allProjects, err
}

// ensureLocation returns the location of slot, creating it on first use
func ensureLocation(ctx context.Context, store *repository.Store, locations *service.LocationService, slot LocationData) (uuid.UUID, error) {
	created, err := locations.Create(ctx, &service.CreateLocationRequest{Rack: slot.Rack, Drawer: slot.Drawer, Box: slot.Box})
	if err == nil {
		return created.ID, nil
	}
	if !errors.Is(err, apperrors.ErrLocationExists) {
		return uuid.Nil, err
	}
	existing, err := store.WithContext(ctx).Locations().GetBySlot(
		strings.TrimSpace(slot.Rack), strings.TrimSpace(slot.Drawer), strings.TrimSpace(slot.Box))
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to query location: %w", err)
	}
	return existing.ID, nil
}

func createComponent(ctx context.Context, db *gorm.DB, components *service.ComponentService, componentData ComponentData, locationMap map[LocationData]uuid.UUID) (uuid.UUID, bool, error) {
	var existing models.Component
	err := db.WithContext(ctx).Where("name = ?", componentData.Name).First(&existing).Error
	if err == nil {
		return existing.ID, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, false, fmt.Errorf("failed to query component: %w", err)
	}

	req := &service.CreateComponentRequest{
		Name:                   componentData.Name,
		Manufacturer:           componentData.Manufacturer,
		ManufacturerPartNumber: componentData.ManufacturerPartNumber,
		Package:                componentData.Package,
		Quantity:               componentData.Quantity,
		ReorderPoint:           componentData.ReorderPoint,
	}
	if componentData.Location != nil {
		id := locationMap[*componentData.Location]
		req.LocationID = &id
	}
	created, err := components.Create(ctx, req)
	if err != nil {
		return uuid.Nil, false, err
	}
	return created.ID, true, nil
}

func createProject(ctx context.Context, db *gorm.DB, projects *service.ProjectService, projectData ProjectData, componentMap map[string]uuid.UUID) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Project{}).Where("name = ?", projectData.Name).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to query project: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	project, err := projects.Create(ctx, &service.CreateProjectRequest{
		Name:           projectData.Name,
		Description:    projectData.Description,
		EstimatedHours: projectData.EstimatedHours,
	})
	if err != nil {
		return false, err
	}

	for _, itemData := range projectData.Items {
		req := &service.AddItemRequest{
			CustomName:       itemData.CustomName,
			QuantityRequired: itemData.Quantity,
			Type:             models.ItemType(itemData.Type),
		}
		if itemData.Component != "" {
			id, ok := componentMap[itemData.Component]
			if !ok {
				log.Printf("⚠️  Warning: component %s not found for project %s", itemData.Component, projectData.Name)
				continue
			}
			req.ComponentID = &id
		}
		if _, err := projects.AddItem(ctx, project.ID, req); err != nil {
			return false, fmt.Errorf("failed to add item: %w", err)
		}
	}

	return true, nil
}
