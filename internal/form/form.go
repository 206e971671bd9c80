package form

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/delivery-frontend/internal/form/schema"
	"github.com/magabrotheeeer/delivery-frontend/internal/models"
)

// Phase фаза жизненного цикла диалога создания пользователя.
type Phase string

const (
	// PhaseClosed диалог закрыт, черновик сброшен
	PhaseClosed Phase = "closed"
	// PhaseEditing диалог открыт, поля редактируются
	PhaseEditing Phase = "editing"
	// PhaseSubmitting отправка выполняется, повторная отправка запрещена
	PhaseSubmitting Phase = "submitting"
)

// submitFailedMessage единственное сообщение об ошибке, которое видит
// пользователь при неудачной отправке.
const submitFailedMessage = "Failed to create user."

// ErrNotOpen попытка работать с закрытым диалогом.
var ErrNotOpen = errors.New("form is not open")

// ErrSubmitInFlight повторная отправка, пока предыдущая не завершилась.
var ErrSubmitInFlight = errors.New("submission already in flight")

// MissingFieldsError обязательные для выбранной роли поля остались пустыми.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("required fields are empty: %s", strings.Join(e.Fields, ", "))
}

// Form компонент формы создания пользователя. Связывает контейнер состояния,
// резолвер схемы полей и маршрутизатор отправки. Успешная отправка сбрасывает
// черновик, уведомляет родителя и закрывает диалог; неудачная оставляет
// черновик нетронутым и показывает одно сообщение об ошибке.
type Form struct {
	state  *State
	router *Router
	log    *slog.Logger

	onUserAdded func()
	onClose     func()

	phase  Phase
	errMsg string
}

// New создает закрытую форму. Обе callback-функции могут быть nil.
func New(router *Router, log *slog.Logger, onUserAdded, onClose func()) *Form {
	return &Form{
		state:       NewState(),
		router:      router,
		log:         log,
		onUserAdded: onUserAdded,
		onClose:     onClose,
		phase:       PhaseClosed,
	}
}

// Open открывает диалог с черновиком по умолчанию.
func (f *Form) Open() {
	f.state.Reset()
	f.errMsg = ""
	f.phase = PhaseEditing
}

// Close закрывает диалог: сбрасывает черновик, гасит ошибку и уведомляет
// родителя. Вызывается и при явной отмене, и после успешной отправки.
func (f *Form) Close() {
	if f.phase == PhaseClosed {
		return
	}
	f.state.Reset()
	f.errMsg = ""
	f.phase = PhaseClosed
	if f.onClose != nil {
		f.onClose()
	}
}

// SetField записывает значение одного поля черновика.
func (f *Form) SetField(name, value string) error {
	if f.phase != PhaseEditing {
		return ErrNotOpen
	}
	return f.state.Set(name, value)
}

// SetRole выбирает роль. Ранее введённые значения полей, переставших быть
// обязательными, не очищаются; повторный выбор той же роли ничего не меняет.
func (f *Form) SetRole(role models.Role) error {
	return f.SetField(models.FieldRole, string(role))
}

// Draft возвращает текущий черновик.
func (f *Form) Draft() models.UserDraft {
	return f.state.Get()
}

// Fields возвращает упорядоченный набор отображаемых полей для текущей роли.
// Набор чисто презентационный: отправку он не ограничивает.
func (f *Form) Fields() []string {
	return schema.RequiredFields(f.state.Get().Role)
}

// Phase возвращает текущую фазу диалога.
func (f *Form) Phase() Phase {
	return f.phase
}

// Err возвращает видимое сообщение последней неудачной отправки,
// пустая строка — ошибки нет.
func (f *Form) Err() string {
	return f.errMsg
}

// Submit проверяет, что все обязательные для роли поля заполнены, и отправляет
// черновик. Пока отправка выполняется, повторный вызов отклоняется. Если диалог
// закрыли до прихода ответа, результат не применяется.
func (f *Form) Submit(ctx context.Context) error {
	const op = "form.Form.Submit"

	switch f.phase {
	case PhaseSubmitting:
		return ErrSubmitInFlight
	case PhaseClosed:
		return ErrNotOpen
	}

	draft := f.state.Get()
	if missing := schema.MissingFields(draft); len(missing) > 0 {
		f.log.Info("submit blocked by empty required fields",
			slog.String("op", op), slog.Any("fields", missing))
		return &MissingFieldsError{Fields: missing}
	}

	f.phase = PhaseSubmitting
	err := f.router.Submit(ctx, draft)

	if f.phase != PhaseSubmitting {
		// Диалог закрыли, пока запрос был в полёте.
		return err
	}

	if err != nil {
		f.phase = PhaseEditing
		f.errMsg = submitFailedMessage
		return err
	}

	f.state.Reset()
	f.errMsg = ""
	f.phase = PhaseClosed
	if f.onUserAdded != nil {
		f.onUserAdded()
	}
	if f.onClose != nil {
		f.onClose()
	}
	return nil
}
