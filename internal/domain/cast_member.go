package domain

import (
	"time"
)

type CastMemberType int

const (
	CastMemberTypeDirector CastMemberType = 1
	CastMemberTypeActor    CastMemberType = 2
)

func (t CastMemberType) Valid() bool {
	return t == CastMemberTypeDirector || t == CastMemberTypeActor
}

type CastMemberParams struct {
	ID        string
	Name      string
	Type      CastMemberType
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CastMember struct {
	id         UUID
	name       string
	memberType CastMemberType
	createdAt  time.Time
	updatedAt  time.Time
}

func NewCastMember(p CastMemberParams) (*CastMember, error) {
	id, err := idOrRandom(p.ID)
	if err != nil {
		return nil, err
	}
	createdAt, updatedAt := timestamps(p.CreatedAt, p.UpdatedAt)

	m := &CastMember{
		id:         id,
		name:       p.Name,
		memberType: p.Type,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
	if err := newValidationError("cast member", validateCastMember(m)); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *CastMember) Update(name string, memberType CastMemberType) error {
	next := *m
	next.name, next.memberType = name, memberType
	if err := newValidationError("cast member", validateCastMember(&next)); err != nil {
		return err
	}
	m.name, m.memberType = name, memberType
	m.updatedAt = time.Now()
	return nil
}

func validateCastMember(m *CastMember) []FieldError {
	var checks fieldChecks
	checks.length("name", m.name, 3, 255)
	if !m.memberType.Valid() {
		checks.add("type", "must be 1 (director) or 2 (actor)")
	}
	return checks
}

func (m *CastMember) ID() UUID { return m.id }
func (m *CastMember) Name() string { return m.name }
func (m *CastMember) Type() CastMemberType { return m.memberType }
func (m *CastMember) CreatedAt() time.Time { return m.createdAt }
func (m *CastMember) UpdatedAt() time.Time { return m.updatedAt }
