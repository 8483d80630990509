package models

import "time"

// Report - жалоба/инцидент из гражданского портала. Движок читает их
// только как вход теплокарты, путь записи принадлежит порталу.
type Report struct {
	ID        int64     `json:"id"`
	Category  string    `json:"category"`
	Status    string    `json:"status"`
	Longitude float64   `json:"longitude"`
	Latitude  float64   `json:"latitude"`
	CreatedAt time.Time `json:"created_at"`
}

// Asset - объект инфраструктуры (школа, скважина, трансформатор и т.д.)
type Asset struct {
	ID        int64   `json:"id"`
	Type      string  `json:"type"`
	Status    string  `json:"status"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Active    bool    `json:"active"`
}

// UserPoint - пользователь с известными координатами для слоя плотности
type UserPoint struct {
	UserID    string  `json:"user_id"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}
