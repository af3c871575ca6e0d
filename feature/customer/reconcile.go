package customer

import (
	"context"
	"slices"

	"customer-service/feature/customer/models"

	"go.uber.org/zap"
)

// Reconcile decides how change applies to the stored customer with id and
// returns the record to persist. It reads but never writes.
//
// A field is staged only when it is present and differs from the stored value.
// A request that stages nothing fails with ErrNoOp. Staged values must pass the
// registration rules (ErrInvalid) and a new email must not belong to any
// customer (ErrConflict).
func (s *Service) Reconcile(ctx context.Context, id int64, change models.ChangeRequest) (*models.Customer, error) {
	current, err := s.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	resolved, staged := stage(*current, change)
	if len(staged) == 0 {
		return nil, &Error{Kind: ErrNoOp, Message: "no data changed found"}
	}

	// Staged values obey the same rules as a registration; untouched fields are not re-checked.
	if err := s.validate.StructPartial(models.Registration{
		Name:  resolved.Name,
		Email: resolved.Email,
		Age:   resolved.Age,
	}, stagedFields(staged)...); err != nil {
		return nil, invalid("invalid customer: %v", err)
	}

	if slices.Contains(staged, "email") {
		taken, err := s.gateway.ExistsByEmail(ctx, resolved.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, conflict("email already taken")
		}
	}

	s.logger.Debug("Customer change staged", zap.Int64("id", id), zap.Strings("fields", staged))
	return &resolved, nil
}

// stage overlays the differing fields of change onto current and names them.
func stage(current models.Customer, change models.ChangeRequest) (models.Customer, []string) {
	var staged []string

	if change.Name.Differs(current.Name) {
		current.Name, _ = change.Name.Get()
		staged = append(staged, "name")
	}
	if change.Email.Differs(current.Email) {
		current.Email, _ = change.Email.Get()
		staged = append(staged, "email")
	}
	if change.Age.Differs(current.Age) {
		current.Age, _ = change.Age.Get()
		staged = append(staged, "age")
	}

	return current, staged
}

// stagedFields maps staged column names to Registration field names.
func stagedFields(staged []string) []string {
	fields := make([]string, 0, len(staged))
	for _, column := range staged {
		switch column {
		case "name":
			fields = append(fields, "Name")
		case "email":
			fields = append(fields, "Email")
		case "age":
			fields = append(fields, "Age")
		}
	}
	return fields
}
