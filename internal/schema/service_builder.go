package schema

// ServiceSource is the view of the description document needed to locate the
// service element.
type ServiceSource interface {
	ServiceName() (string, bool)
}

// BuildService models the service: its name is decorated and validated like
// a type name, the classmap is taken over in type discovery order, and one
// method is added per operation. Methods are deduplicated by generated name
// only: a later operation whose name collides with an existing method is
// dropped, regardless of its parameter list.
func BuildService(src ServiceSource, ops []*Operation, classMap []ClassMapEntry, prefix, suffix string) (*Service, error) {
	raw, ok := src.ServiceName()
	if !ok {
		return nil, ErrMissingService
	}

	generated, err := ValidateClassName(prefix + raw + suffix)
	if err != nil {
		generated = Fallback(prefix + raw + suffix)
	}

	svc := &Service{Name: generated, ClassMap: classMap}
	seen := make(map[string]struct{})
	for _, op := range ops {
		name := NamingConvention(SafeName(op.Name))
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		svc.Methods = append(svc.Methods, Method{Name: name, Operation: op})
	}
	return svc, nil
}
