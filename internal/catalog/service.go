package catalog

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Product, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

// SeedIfEmpty inserts the given products only when the catalog holds no
// records. It reports whether seeding happened. Runs once at process start,
// never request-triggered.
func (s *Service) SeedIfEmpty(products []Product) (bool, error) {
	n, err := s.repo.Count()
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	if err := s.repo.InsertAll(products); err != nil {
		return false, err
	}
	return true, nil
}
