package db

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/coursematch/coursematch-backend/internal/types"
)

// SeedFromDir imports the registrar scrape output (courses.json) and any
// bundled demo profiles (student_profiles.json) when the corresponding
// tables are empty. Missing files are skipped; a partially present seed
// directory is normal.
func (s *Service) SeedFromDir(dir string) error {
	if dir == "" {
		return nil
	}

	var courseCount int64
	if err := s.db.Model(&types.Course{}).Count(&courseCount).Error; err != nil {
		return fmt.Errorf("count courses: %w", err)
	}
	if courseCount == 0 {
		var courses []*types.Course
		ok, err := loadJSONFile(filepath.Join(dir, "courses.json"), &courses)
		if err != nil {
			return fmt.Errorf("load courses seed: %w", err)
		}
		if ok && len(courses) > 0 {
			if err := s.db.CreateInBatches(courses, 200).Error; err != nil {
				return fmt.Errorf("insert courses seed: %w", err)
			}
			s.log.Info("Seeded catalog", "courses", len(courses))
		}
	}

	var profileCount int64
	if err := s.db.Model(&types.StudentProfile{}).Count(&profileCount).Error; err != nil {
		return fmt.Errorf("count profiles: %w", err)
	}
	if profileCount == 0 {
		var profiles []*types.StudentProfile
		ok, err := loadJSONFile(filepath.Join(dir, "student_profiles.json"), &profiles)
		if err != nil {
			return fmt.Errorf("load profiles seed: %w", err)
		}
		if ok && len(profiles) > 0 {
			if err := s.db.CreateInBatches(profiles, 200).Error; err != nil {
				return fmt.Errorf("insert profiles seed: %w", err)
			}
			s.log.Info("Seeded profiles", "profiles", len(profiles))
		}
	}

	return nil
}

func loadJSONFile(path string, out interface{}) (bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return true, nil
}
