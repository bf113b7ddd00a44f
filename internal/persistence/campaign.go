package persistence

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ErrCampaignNotFound is returned when loading a campaign that was never created.
var ErrCampaignNotFound = errors.New("campaign not found")

const logFile = "log.jsonl"

// CampaignManager bridges configuration settings with local file organization.
type CampaignManager struct {
	WorldsDir string
}

// NewCampaignManager returns manager localized to the specified workspace setting directory.
func NewCampaignManager(worldsDir string) *CampaignManager {
	return &CampaignManager{WorldsDir: worldsDir}
}

// GetCampaignPath produces safe joined dir paths.
func (c *CampaignManager) GetCampaignPath(world, campaign string) string {
	return filepath.Join(c.WorldsDir, world, campaign)
}

// GetLogPath returns the path to the event log file for a campaign.
func (c *CampaignManager) GetLogPath(world, campaign string) string {
	return filepath.Join(c.GetCampaignPath(world, campaign), logFile)
}

// DataDir is the campaign-local template directory, searched before any
// configured data directory.
func (c *CampaignManager) DataDir(world, campaign string) string {
	return c.GetCampaignPath(world, campaign)
}

// Create generates standard structure for a campaign and opens its log.
func (c *CampaignManager) Create(world, campaign string) (*Store, error) {
	if world == "" || campaign == "" {
		return nil, fmt.Errorf("world and campaign names are required")
	}
	path := c.GetCampaignPath(world, campaign)

	dirs := []string{
		path,
		filepath.Join(path, "creatures"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return NewStore(c.GetLogPath(world, campaign))
}

// Load opens the log of an existing campaign.
func (c *CampaignManager) Load(world, campaign string) (*Store, error) {
	path := c.GetCampaignPath(world, campaign)
	if stat, err := os.Stat(path); err != nil || !stat.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrCampaignNotFound, path)
	}

	return NewStore(c.GetLogPath(world, campaign))
}

// List returns the campaigns of a world, sorted.
func (c *CampaignManager) List(world string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(c.WorldsDir, world))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list world %s: %w", world, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
