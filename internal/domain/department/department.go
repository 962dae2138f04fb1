package department

import (
	"fmt"
	"strings"
	"time"
)

const maxNameLength = 120

// Department is a municipal unit that complaints are routed to.
type Department struct {
	id        uint
	name      string
	code      string
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

func NewDepartment(name, code string) (*Department, error) {
	name = strings.TrimSpace(name)
	code = strings.TrimSpace(code)
	if name == "" {
		return nil, fmt.Errorf("department name is required")
	}
	if len(name) > maxNameLength {
		return nil, fmt.Errorf("department name cannot exceed %d characters", maxNameLength)
	}
	if code == "" {
		return nil, fmt.Errorf("department code is required")
	}

	now := time.Now()
	return &Department{
		name:      name,
		code:      strings.ToUpper(code),
		active:    true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructDepartment rebuilds a department from persistence.
func ReconstructDepartment(id uint, name, code string, active bool, createdAt, updatedAt time.Time) (*Department, error) {
	if id == 0 {
		return nil, fmt.Errorf("department ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("department name is required")
	}

	return &Department{
		id:        id,
		name:      name,
		code:      code,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (d *Department) ID() uint             { return d.id }
func (d *Department) Name() string         { return d.name }
func (d *Department) Code() string         { return d.code }
func (d *Department) IsActive() bool       { return d.active }
func (d *Department) CreatedAt() time.Time { return d.createdAt }
func (d *Department) UpdatedAt() time.Time { return d.updatedAt }

func (d *Department) SetID(id uint) error {
	if d.id != 0 {
		return fmt.Errorf("department ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("department ID cannot be zero")
	}
	d.id = id
	return nil
}

func (d *Department) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("department name is required")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("department name cannot exceed %d characters", maxNameLength)
	}
	d.name = name
	d.updatedAt = time.Now()
	return nil
}

func (d *Department) Deactivate() {
	d.active = false
	d.updatedAt = time.Now()
}
