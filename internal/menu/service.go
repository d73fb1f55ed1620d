// Package menu serves the food catalog from a directory of JSON files, one
// menu per file, with the file name (minus extension) as the menu ID.
package menu

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Lersubem/foodstack/internal/domain"
)

type Service struct {
	dir string
}

func NewService(dir string) (*Service, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("menu directory is required")
	}
	return &Service{dir: dir}, nil
}

// GetAllMenus loads every menu file in the directory, sorted by menu ID. A
// missing directory is an empty catalog, but an unreadable or corrupt menu
// file is an error: a broken catalog must not look like an empty one.
func (s *Service) GetAllMenus(ctx context.Context) ([]domain.Menu, error) {
	ids, err := s.MenuIDs(ctx)
	if err != nil {
		return nil, err
	}

	menus := make([]domain.Menu, 0, len(ids))
	for _, id := range ids {
		menu, err := s.loadMenu(id)
		if err != nil {
			return nil, err
		}
		menus = append(menus, menu)
	}
	return menus, nil
}

// GetMenu returns one menu by ID, or domain.ErrMenuNotFound.
func (s *Service) GetMenu(_ context.Context, menuID string) (domain.Menu, error) {
	if strings.TrimSpace(menuID) == "" {
		return domain.Menu{}, domain.ErrInvalidID
	}
	// Menu IDs map to file names; reject anything that could escape the dir.
	if menuID != filepath.Base(menuID) || strings.Contains(menuID, "..") {
		return domain.Menu{}, domain.ErrInvalidID
	}

	if _, err := os.Stat(s.menuPath(menuID)); err != nil {
		if os.IsNotExist(err) {
			return domain.Menu{}, domain.ErrMenuNotFound
		}
		return domain.Menu{}, fmt.Errorf("stat menu %s: %w", menuID, err)
	}
	return s.loadMenu(menuID)
}

// MenuIDs lists the available menu IDs, sorted.
func (s *Service) MenuIDs(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read menu dir: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		id := strings.TrimSuffix(name, ".json")
		if id == "" {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *Service) loadMenu(menuID string) (domain.Menu, error) {
	data, err := os.ReadFile(s.menuPath(menuID))
	if err != nil {
		return domain.Menu{}, fmt.Errorf("read menu %s: %w", menuID, err)
	}

	var menu domain.Menu
	if err := json.Unmarshal(data, &menu); err != nil {
		return domain.Menu{}, fmt.Errorf("parse menu %s: %w", menuID, err)
	}
	if menu.MenuID == "" {
		menu.MenuID = menuID
	}
	return menu, nil
}

func (s *Service) menuPath(menuID string) string {
	return filepath.Join(s.dir, menuID+".json")
}
