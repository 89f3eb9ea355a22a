// Package seeder fills an empty database with one demo account per built-in
// role and a handful of knowledge items spread across the workflow states.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowledge-backend/internal/domain"
	"github.com/heartmarshall/knowledge-backend/internal/service/knowledge"
)

// allPhases defines the canonical execution order.
var allPhases = []string{"users", "items"}

type roleRepo interface {
	GetByName(ctx context.Context, name domain.Role) (*domain.RoleRecord, error)
}

type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
}

type passwordHasher interface {
	Hash(password string) (string, error)
}

type itemService interface {
	CreateItem(ctx context.Context, caller domain.Caller, input knowledge.CreateItemInput) (*domain.KnowledgeItem, error)
	ChangeStatus(ctx context.Context, caller domain.Caller, input knowledge.ChangeStatusInput) (*knowledge.ChangeStatusResult, error)
}

// Deps are the stores and services the pipeline writes through.
type Deps struct {
	Roles  roleRepo
	Users  userRepo
	Hasher passwordHasher
	Items  itemService
}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Duration time.Duration
	Err      error
}

// Pipeline runs the seeding phases in order.
type Pipeline struct {
	log     *slog.Logger
	deps    Deps
	cfg     Config
	users   map[domain.Role]domain.Caller
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, deps Deps, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log,
		deps:    deps,
		cfg:     cfg,
		users:   make(map[domain.Role]domain.Caller),
		results: make(map[string]PhaseResult),
	}
}

// Run executes the requested phases (all when phases is empty). The items
// phase depends on the accounts resolved by the users phase.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	if len(phases) == 0 {
		phases = allPhases
	}
	for _, ph := range phases {
		if !slices.Contains(allPhases, ph) {
			return fmt.Errorf("seeder: unknown phase %q", ph)
		}
	}
	if slices.Contains(phases, "items") && !slices.Contains(phases, "users") {
		phases = append([]string{"users"}, phases...)
	}

	for _, phase := range allPhases {
		if !slices.Contains(phases, phase) {
			continue
		}
		start := time.Now()
		var res PhaseResult
		switch phase {
		case "users":
			res = p.seedUsers(ctx)
		case "items":
			res = p.seedItems(ctx)
		}
		res.Duration = time.Since(start)
		p.results[phase] = res

		p.log.Info("seeder phase finished",
			slog.String("phase", phase),
			slog.Int("inserted", res.Inserted),
			slog.Int("skipped", res.Skipped),
			slog.Duration("duration", res.Duration),
		)
		if res.Err != nil {
			return fmt.Errorf("seeder: phase %s: %w", phase, res.Err)
		}
	}
	return nil
}

// Results returns a copy of the per-phase results.
func (p *Pipeline) Results() map[string]PhaseResult {
	return maps.Clone(p.results)
}

var demoRoles = []domain.Role{
	domain.RoleAdministrator,
	domain.RoleManager,
	domain.RoleKnowledgeChampion,
	domain.RoleEmployee,
}

// demoEmail derives "knowledge.champion@<domain>" style addresses.
func demoEmail(role domain.Role, emailDomain string) string {
	local := strings.ReplaceAll(strings.ToLower(role.String()), " ", ".")
	return local + "@" + emailDomain
}

func (p *Pipeline) seedUsers(ctx context.Context) PhaseResult {
	var res PhaseResult

	hash := ""
	if !p.cfg.DryRun {
		h, err := p.deps.Hasher.Hash(p.cfg.Password)
		if err != nil {
			res.Err = fmt.Errorf("hash password: %w", err)
			return res
		}
		hash = h
	}

	for _, role := range demoRoles {
		email := demoEmail(role, p.cfg.EmailDomain)
		name := "Demo " + role.String()

		existing, err := p.deps.Users.GetByEmail(ctx, email)
		switch {
		case err == nil:
			p.users[role] = domain.Caller{ID: existing.ID, Name: existing.Name, Role: existing.Role}
			res.Skipped++
			continue
		case !errors.Is(err, domain.ErrNotFound):
			res.Err = fmt.Errorf("lookup %s: %w", email, err)
			return res
		}

		if p.cfg.DryRun {
			p.users[role] = domain.Caller{ID: uuid.New(), Name: name, Role: role}
			res.Inserted++
			continue
		}

		rec, err := p.deps.Roles.GetByName(ctx, role)
		if err != nil {
			res.Err = fmt.Errorf("role %s: %w", role, err)
			return res
		}

		now := time.Now().UTC()
		created, err := p.deps.Users.Create(ctx, &domain.User{
			ID:           uuid.New(),
			Name:         name,
			Email:        email,
			PasswordHash: hash,
			RoleID:       rec.ID,
			Role:         role,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			res.Err = fmt.Errorf("create %s: %w", email, err)
			return res
		}
		p.users[role] = domain.Caller{ID: created.ID, Name: created.Name, Role: role}
		res.Inserted++
	}
	return res
}

var sampleTopics = []struct {
	title    string
	tags     []string
	category string
}{
	{"Onboarding checklist", []string{"onboarding", "hr"}, "Process"},
	{"Incident response runbook", []string{"ops", "on-call"}, "Operations"},
	{"Code review guidelines", []string{"engineering", "review"}, "Engineering"},
	{"Expense policy", []string{"finance"}, "Policy"},
	{"Release process", []string{"engineering", "release"}, "Engineering"},
	{"Customer escalation paths", []string{"support"}, "Process"},
}

// seedItems creates sample items authored by the employee account and walks
// every third item to review and every third to published, so the dashboard
// and notification inboxes have content.
func (p *Pipeline) seedItems(ctx context.Context) PhaseResult {
	var res PhaseResult
	author, ok := p.users[domain.RoleEmployee]
	if !ok {
		res.Err = errors.New("employee account not seeded")
		return res
	}
	reviewer := p.users[domain.RoleManager]

	for i := 0; i < p.cfg.SampleItems; i++ {
		topic := sampleTopics[i%len(sampleTopics)]
		if p.cfg.DryRun {
			res.Inserted++
			continue
		}

		category := topic.category
		tags := make([]domain.TagInput, len(topic.tags))
		for j, label := range topic.tags {
			tags[j] = domain.TagInput{Label: label, Category: &category}
		}
		item, err := p.deps.Items.CreateItem(ctx, author, knowledge.CreateItemInput{
			Title:       topic.title,
			Description: "Sample article: " + strings.ToLower(topic.title) + ".",
			Tags:        tags,
		})
		if err != nil {
			res.Err = fmt.Errorf("create item %q: %w", topic.title, err)
			return res
		}
		res.Inserted++

		if i%3 == 0 {
			continue
		}
		if _, err := p.deps.Items.ChangeStatus(ctx, author, knowledge.ChangeStatusInput{
			ItemID: item.ID, Status: domain.StatusPendingReview,
		}); err != nil {
			res.Err = fmt.Errorf("submit item %q: %w", topic.title, err)
			return res
		}
		if i%3 == 2 {
			if _, err := p.deps.Items.ChangeStatus(ctx, reviewer, knowledge.ChangeStatusInput{
				ItemID: item.ID, Status: domain.StatusPublished,
			}); err != nil {
				res.Err = fmt.Errorf("publish item %q: %w", topic.title, err)
				return res
			}
		}
	}
	return res
}
