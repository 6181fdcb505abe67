package get_available_slots

import (
	"time"

	"github.com/medbridge-ng/consultation-service/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	DoctorID string    // ID доктора
	Date     time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	DoctorID  string             // ID доктора
	Date      time.Time          // Дата, на которую запрашивались слоты
	Weekday   string             // Имя дня недели в нижнем регистре
	Timezone  string             // Таймзона шаблона (UTC по умолчанию)
	Available bool               // false: шаблон не задан или день недоступен
	Slots     []domain.TimeRange // Список доступных слотов
	Message   string             // Пояснение при Available == false
}
