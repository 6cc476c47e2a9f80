package book

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Book {
	return s.repo.List()
}

// ListByGrade filters by exact grade match. The grade range check belongs
// to the handler; the store treats any integer as a plain filter value.
func (s *Service) ListByGrade(grade int) []Book {
	return s.repo.ListByGrade(grade)
}

func (s *Service) GetByID(id string) (Book, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Update(id string, patch Patch) (Book, error) {
	return s.repo.Update(id, patch)
}

func (s *Service) Delete(id string) error {
	return s.repo.Delete(id)
}
