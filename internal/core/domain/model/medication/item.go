package medication

import (
	"errors"
	"fmt"
	"regexp"

	"drones/internal/core/domain/model/kernel"
	"drones/internal/pkg/errs"
	"drones/internal/pkg/guard"
)

var (
	namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	codePattern = regexp.MustCompile(`^[A-Z0-9_-]+$`)
)

var (
	ErrItemIsNotConstructed       = errors.New("Item must be created via NewItem constructor")
	ErrNameIsRequired             = errs.NewValueIsRequiredError("name")
	ErrCodeIsRequired             = errs.NewValueIsRequiredError("code")
	ErrImageContentTypeIsRequired = errs.NewValueIsRequiredError("imageContentType")
	ErrIDIsAlreadyAssigned        = errors.New("medication id is already assigned")
	ErrItemIsOnAnotherDrone       = errors.New("medication item is loaded on another drone")
)

// Item is a medication payload unit. It belongs to at most one drone through a
// weak back reference; the image is an opaque blob kept alongside its content type.
type Item struct {
	id               int64
	name             string
	code             string
	weight           kernel.Weight
	image            []byte
	imageContentType string
	droneID          *int64
	guard            guard.ConstructorGuard
}

func NewItem(name, code string, weight kernel.Weight, image []byte, imageContentType string) (*Item, error) {
	item := &Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setName(name),
		item.setCode(code),
		item.setWeight(weight),
		item.setImage(image, imageContentType),
	); err != nil {
		return nil, err
	}

	return item, nil
}

func RestoreItem(
	id int64,
	name, code string,
	weight kernel.Weight,
	image []byte,
	imageContentType string,
	droneID *int64,
) (*Item, error) {
	item, err := NewItem(name, code, weight, image, imageContentType)
	if err != nil {
		return nil, err
	}

	item.id = id
	if droneID != nil {
		id := *droneID
		item.droneID = &id
	}
	return item, nil
}

func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) ID() int64 {
	return i.id
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) Code() string {
	return i.code
}

func (i *Item) Weight() kernel.Weight {
	return i.weight
}

func (i *Item) Image() []byte {
	if i.image == nil {
		return nil
	}
	out := make([]byte, len(i.image))
	copy(out, i.image)
	return out
}

func (i *Item) ImageContentType() string {
	return i.imageContentType
}

// DroneID returns the drone the item is loaded on, or nil when it is detached.
func (i *Item) DroneID() *int64 {
	if i.droneID == nil {
		return nil
	}
	id := *i.droneID
	return &id
}

func (i *Item) AssignID(id int64) error {
	if i.id != 0 {
		return ErrIDIsAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a positive id", id))
	}
	i.id = id
	return nil
}

// AttachTo links the item to a drone. Re-attaching to the same drone is a no-op.
func (i *Item) AttachTo(droneID int64) error {
	if droneID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("droneID", fmt.Errorf("%d is not a positive id", droneID))
	}
	if i.droneID != nil && *i.droneID != droneID {
		return ErrItemIsOnAnotherDrone
	}
	i.droneID = &droneID
	return nil
}

// UpdateDetails replaces every editable field. Nothing changes when any field is invalid.
func (i *Item) UpdateDetails(name, code string, weight kernel.Weight, image []byte, imageContentType string) error {
	updated := *i
	if err := errors.Join(
		updated.setName(name),
		updated.setCode(code),
		updated.setWeight(weight),
		updated.setImage(image, imageContentType),
	); err != nil {
		return err
	}

	*i = updated
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	if !namePattern.MatchString(name) {
		return errs.NewValueIsInvalidErrorWithCause("name",
			fmt.Errorf("%q may contain only letters, digits, '-' and '_'", name))
	}
	i.name = name
	return nil
}

func (i *Item) setCode(code string) error {
	if code == "" {
		return ErrCodeIsRequired
	}
	if !codePattern.MatchString(code) {
		return errs.NewValueIsInvalidErrorWithCause("code",
			fmt.Errorf("%q may contain only upper case letters, digits, '-' and '_'", code))
	}
	i.code = code
	return nil
}

func (i *Item) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	i.weight = weight
	return nil
}

func (i *Item) setImage(image []byte, contentType string) error {
	if len(image) == 0 {
		i.image = nil
		i.imageContentType = ""
		return nil
	}
	if contentType == "" {
		return ErrImageContentTypeIsRequired
	}
	i.image = make([]byte, len(image))
	copy(i.image, image)
	i.imageContentType = contentType
	return nil
}
