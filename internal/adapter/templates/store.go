// Package templates loads training scenarios from a directory tree and
// serves them read-only to generation runs.
package templates

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"training-courses/internal/core/domain"
	"training-courses/internal/core/port"
)

// Store is a TemplateStore backed by a private copy of the template tree.
// Scenarios are parsed once by Load and never modified afterwards.
type Store struct {
	logger *slog.Logger

	mu        sync.RWMutex
	dir       string
	scenarios map[string]*domain.TrainingScenario
}

// NewStore returns an empty store. Call Load before serving requests.
func NewStore(logger *slog.Logger) *Store {
	return &Store{logger: logger, scenarios: map[string]*domain.TrainingScenario{}}
}

// Load copies src into a new folder under tempDir (the OS temp dir when
// empty) and parses every scenario directory found at its top level. Reads
// go through an os.Root, so links pointing outside the copy are rejected.
// Any invalid scenario fails the whole load.
func (s *Store) Load(src fs.FS, tempDir string) error {
	dir, err := os.MkdirTemp(tempDir, "training-scenarios-")
	if err != nil {
		return fmt.Errorf("create template folder: %w", err)
	}
	scenarios, err := s.load(src, dir)
	if err != nil {
		_ = os.RemoveAll(dir)
		return err
	}

	s.mu.Lock()
	old := s.dir
	s.dir, s.scenarios = dir, scenarios
	s.mu.Unlock()
	if old != "" {
		_ = os.RemoveAll(old)
	}
	s.logger.Info("training scenarios loaded", slog.Int("count", len(scenarios)), slog.String("dir", dir))
	return nil
}

func (s *Store) load(src fs.FS, dir string) (map[string]*domain.TrainingScenario, error) {
	if err := os.CopyFS(dir, src); err != nil {
		return nil, fmt.Errorf("copy templates: %w", err)
	}
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("open template folder: %w", err)
	}
	defer root.Close()
	fsys := root.FS()

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read template folder: %w", err)
	}
	out := make(map[string]*domain.TrainingScenario)
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		sc, err := parseScenario(fsys, e.Name())
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", e.Name(), err)
		}
		if _, dup := out[sc.Label]; dup {
			return nil, fmt.Errorf("scenario %s: duplicate label %q", e.Name(), sc.Label)
		}
		out[sc.Label] = sc
		s.logger.Debug("scenario parsed", slog.String("scenario", sc.Label), slog.Int("campaigns", len(sc.Campaigns)))
	}
	return out, nil
}

// Scenario returns the scenario with the given label.
func (s *Store) Scenario(label string) (*domain.TrainingScenario, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sc, ok := s.scenarios[label]
	return sc, ok
}

// Scenarios returns every scenario summary sorted by label.
func (s *Store) Scenarios() []domain.ScenarioSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ScenarioSummary, 0, len(s.scenarios))
	for _, sc := range s.scenarios {
		out = append(out, sc.Summary())
	}
	slices.SortFunc(out, func(a, b domain.ScenarioSummary) int { return strings.Compare(a.Label, b.Label) })
	return out
}

// Close removes the private template folder.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dir == "" {
		return nil
	}
	err := os.RemoveAll(s.dir)
	s.dir = ""
	return err
}

func parseScenario(fsys fs.FS, dir string) (*domain.TrainingScenario, error) {
	var info scenarioInfo
	if err := decodeYAML(fsys, path.Join(dir, infoFile), &info); err != nil {
		return nil, err
	}
	if info.Label == "" {
		info.Label = dir
	}
	switch info.Type {
	case domain.ScenarioInterviewer, domain.ScenarioManager:
	default:
		return nil, fmt.Errorf("%w: %q", port.ErrUnknownPolicy, info.Type)
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	sc := &domain.TrainingScenario{Label: info.Label, Type: info.Type}
	seen := make(map[string]string, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		c, err := parseCampaign(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("campaign %s: %w", e.Name(), err)
		}
		// Generated ids derive from the template id, so two folders sharing
		// one would publish onto each other.
		if other, dup := seen[c.ID()]; dup {
			return nil, fmt.Errorf("campaigns %s and %s share id %q", other, e.Name(), c.ID())
		}
		seen[c.ID()] = e.Name()
		sc.Campaigns = append(sc.Campaigns, c)
	}
	if len(sc.Campaigns) == 0 {
		return nil, errors.New("no campaign")
	}
	return sc, nil
}

func parseCampaign(fsys fs.FS, dir string) (domain.CampaignTemplate, error) {
	var cm caseManagementExtraction
	if err := decodeYAML(fsys, path.Join(dir, caseManagementFile), &cm); err != nil {
		return domain.CampaignTemplate{}, err
	}
	var q questionnaireExtraction
	if err := decodeYAML(fsys, path.Join(dir, questionnaireFile), &q); err != nil {
		return domain.CampaignTemplate{}, err
	}
	if cm.Campaign.ID == "" {
		return domain.CampaignTemplate{}, errors.New("missing campaign id")
	}
	if q.Campaign.ID != "" && q.Campaign.ID != cm.Campaign.ID {
		return domain.CampaignTemplate{}, fmt.Errorf("campaign id mismatch: %q and %q", cm.Campaign.ID, q.Campaign.ID)
	}

	campaign, err := questionnaireCampaign(fsys, dir, cm.Campaign, q)
	if err != nil {
		return domain.CampaignTemplate{}, err
	}
	units, err := joinSurveyUnits(fsys, dir, cm.SurveyUnits, q.SurveyUnits)
	if err != nil {
		return domain.CampaignTemplate{}, err
	}
	for _, su := range units {
		if !slices.Contains(campaign.QuestionnaireIDs, su.Questionnaire.QuestionnaireID) {
			return domain.CampaignTemplate{}, fmt.Errorf("survey unit %s, questionnaire %q: %w",
				su.ID, su.Questionnaire.QuestionnaireID, port.ErrUnmappedQuestionnaire)
		}
	}
	return domain.CampaignTemplate{
		CaseManagement: cm.Campaign,
		Questionnaire:  campaign,
		SurveyUnits:    units,
		Assignments:    cm.Assignments,
	}, nil
}

func questionnaireCampaign(fsys fs.FS, dir string, cm domain.CaseManagementCampaign, q questionnaireExtraction) (domain.QuestionnaireCampaign, error) {
	out := domain.QuestionnaireCampaign{ID: cm.ID, Label: q.Campaign.Label}
	if out.Label == "" {
		out.Label = cm.Label
	}
	var err error
	if out.Metadata, err = readJSON(fsys, dir, q.Campaign.Metadata); err != nil {
		return out, err
	}
	for _, m := range q.QuestionnaireModels {
		value, err := readJSON(fsys, dir, m.File)
		if err != nil {
			return out, err
		}
		out.QuestionnaireModels = append(out.QuestionnaireModels, domain.QuestionnaireModel{
			ID:                      m.ID,
			Label:                   m.Label,
			RequiredNomenclatureIDs: m.RequiredNomenclatures,
			Value:                   value,
		})
		out.QuestionnaireIDs = append(out.QuestionnaireIDs, m.ID)
	}
	for _, n := range q.Nomenclatures {
		value, err := readJSON(fsys, dir, n.File)
		if err != nil {
			return out, err
		}
		out.Nomenclatures = append(out.Nomenclatures, domain.Nomenclature{ID: n.ID, Label: n.Label, Value: value})
	}
	return out, nil
}

// joinSurveyUnits pairs case-management units with questionnaire units by
// display name. Every record on either side must find its partner.
func joinSurveyUnits(fsys fs.FS, dir string, cmUnits []domain.CaseManagementSurveyUnit, qUnits []questionnaireUnit) ([]domain.SurveyUnit, error) {
	byName := make(map[string]questionnaireUnit, len(qUnits))
	for _, u := range qUnits {
		if _, dup := byName[u.DisplayName]; dup {
			return nil, fmt.Errorf("duplicate questionnaire survey unit %q", u.DisplayName)
		}
		byName[u.DisplayName] = u
	}

	out := make([]domain.SurveyUnit, 0, len(cmUnits))
	for _, cmu := range cmUnits {
		qu, ok := byName[cmu.DisplayName]
		if !ok {
			return nil, fmt.Errorf("survey unit %s: no questionnaire record for %q", cmu.ID, cmu.DisplayName)
		}
		delete(byName, cmu.DisplayName)

		rec := domain.QuestionnaireSurveyUnit{ID: cmu.ID, QuestionnaireID: qu.QuestionnaireID}
		for _, f := range []struct {
			dst *json.RawMessage
			ref string
		}{
			{&rec.Personalization, qu.Personalization},
			{&rec.Data, qu.Data},
			{&rec.Comment, qu.Comment},
			{&rec.StateData, qu.StateData},
		} {
			raw, err := readJSON(fsys, dir, f.ref)
			if err != nil {
				return nil, fmt.Errorf("survey unit %s: %w", cmu.ID, err)
			}
			*f.dst = raw
		}
		out = append(out, domain.SurveyUnit{ID: cmu.ID, CaseManagement: cmu, Questionnaire: rec})
	}
	for name := range byName {
		return nil, fmt.Errorf("questionnaire survey unit %q has no case-management record", name)
	}
	return out, nil
}

func decodeYAML(fsys fs.FS, name string, v any) error {
	f, err := fsys.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// readJSON reads a payload referenced relative to dir. An empty reference
// yields nil.
func readJSON(fsys fs.FS, dir, ref string) (json.RawMessage, error) {
	if ref == "" {
		return nil, nil
	}
	name := path.Join(dir, ref)
	if !fs.ValidPath(name) || !strings.HasPrefix(name, dir+"/") {
		return nil, fmt.Errorf("reference %q escapes %s", ref, dir)
	}
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	if !json.Valid(b) {
		return nil, fmt.Errorf("%s: invalid JSON", name)
	}
	return json.RawMessage(b), nil
}

var _ port.TemplateStore = (*Store)(nil)
