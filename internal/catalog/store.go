package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrServiceNotFound    = errors.New("service not found")
	ErrTeamMemberNotFound = errors.New("team member not found")
	ErrNoTeamMembersFound = errors.New("no team members found")
)

//go:embed catalog.yaml
var seedYAML []byte

// Store holds the read-only catalog. It is populated once and never mutated,
// so it is safe for concurrent use without locking.
type Store struct {
	services []Service
	team     []TeamMember
	contact  ContactInfo
}

// Load builds a Store from the embedded seed document.
func Load() (*Store, error) {
	return Parse(seedYAML)
}

// Parse builds a Store from a YAML seed document.
func Parse(raw []byte) (*Store, error) {
	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("catalog: decode seed: %w", err)
	}
	return New(doc)
}

// New builds a Store from an in-memory document. Ids must be dense and start at 1.
func New(doc Document) (*Store, error) {
	for i, svc := range doc.Services {
		if svc.ID != i+1 {
			return nil, fmt.Errorf("catalog: service at position %d has id %d, want %d", i, svc.ID, i+1)
		}
	}
	for i, member := range doc.Team {
		if member.ID != i+1 {
			return nil, fmt.Errorf("catalog: team member at position %d has id %d, want %d", i, member.ID, i+1)
		}
	}

	s := &Store{
		services: make([]Service, len(doc.Services)),
		team:     make([]TeamMember, len(doc.Team)),
		contact:  doc.Contact,
	}
	for i, svc := range doc.Services {
		s.services[i] = cloneService(svc)
	}
	for i, member := range doc.Team {
		s.team[i] = cloneMember(member)
	}
	return s, nil
}

func (s *Store) ListServices() []Service {
	out := make([]Service, len(s.services))
	for i, svc := range s.services {
		out[i] = cloneService(svc)
	}
	return out
}

func (s *Store) GetService(id int) (Service, error) {
	for _, svc := range s.services {
		if svc.ID == id {
			return cloneService(svc), nil
		}
	}
	return Service{}, ErrServiceNotFound
}

func (s *Store) ListTeam() []TeamMember {
	out := make([]TeamMember, len(s.team))
	for i, member := range s.team {
		out[i] = cloneMember(member)
	}
	return out
}

func (s *Store) GetTeamMember(id int) (TeamMember, error) {
	for _, member := range s.team {
		if member.ID == id {
			return cloneMember(member), nil
		}
	}
	return TeamMember{}, ErrTeamMemberNotFound
}

// FindTeamByExpertise returns members with at least one expertise entry
// containing skill, ignoring case. An empty result is reported as
// ErrNoTeamMembersFound rather than an empty slice.
func (s *Store) FindTeamByExpertise(skill string) ([]TeamMember, error) {
	needle := strings.ToLower(skill)
	var out []TeamMember
	for _, member := range s.team {
		if hasExpertise(member, needle) {
			out = append(out, cloneMember(member))
		}
	}
	if len(out) == 0 {
		return nil, ErrNoTeamMembersFound
	}
	return out, nil
}

func (s *Store) ContactInfo() ContactInfo {
	return s.contact
}

func hasExpertise(member TeamMember, needle string) bool {
	for _, exp := range member.Expertise {
		if strings.Contains(strings.ToLower(exp), needle) {
			return true
		}
	}
	return false
}

func cloneService(svc Service) Service {
	svc.Features = copyStrings(svc.Features)
	return svc
}

func cloneMember(member TeamMember) TeamMember {
	member.Expertise = copyStrings(member.Expertise)
	return member
}

// copyStrings never returns nil so lists always encode as JSON arrays.
func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
