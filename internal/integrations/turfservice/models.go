package turfservice

// Turf модель спортивной площадки из TurfService
type Turf struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	City         string  `json:"city"`
	Address      string  `json:"address"`
	SportType    string  `json:"sport_type"`
	PricePerHour float64 `json:"price_per_hour"`
	ManagerIDs   []int64 `json:"manager_ids"`
	IsActive     bool    `json:"is_active"`
}

// IsManager проверяет, является ли пользователь менеджером площадки
func (t *Turf) IsManager(userID int64) bool {
	for _, id := range t.ManagerIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// ErrorResponse модель ошибки от TurfService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
