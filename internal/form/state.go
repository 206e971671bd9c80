// Package form реализует диалог создания пользователя: контейнер состояния
// черновика, маршрутизатор отправки и сам компонент формы с его жизненным
// циклом. У каждого экземпляра диалога собственный черновик; все переходы
// выполняет один логический писатель, поэтому синхронизации здесь нет.
package form

import "github.com/magabrotheeeer/delivery-frontend/internal/models"

// State контейнер состояния формы. Держит текущие значения всех возможных
// полей черновика и обновляет их по одному: запись поля не влияет на другие.
type State struct {
	draft models.UserDraft
}

// NewState создает контейнер с черновиком по умолчанию.
func NewState() *State {
	return &State{draft: models.DefaultUserDraft()}
}

// Get возвращает текущий черновик.
func (s *State) Get() models.UserDraft {
	return s.draft
}

// Set заменяет значение ровно одного поля, остальные не трогает.
func (s *State) Set(field, value string) error {
	draft, err := s.draft.WithField(field, value)
	if err != nil {
		return err
	}
	s.draft = draft
	return nil
}

// Reset возвращает все поля к значениям по умолчанию,
// включая deliveryType=DELIVERY.
func (s *State) Reset() {
	s.draft = models.DefaultUserDraft()
}
