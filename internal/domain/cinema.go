package domain

import (
	"context"
)

type Cinema struct {
	ID      int
	Name    string
	Address string
	City    string
	Halls   []CinemaHall
}

type CinemaHall struct {
	ID       int    `json:"id"`
	CinemaID int    `json:"cinemaId"`
	Name     string `json:"name"`
}

type CinemaRepository interface {
	GetByHallId(ctx context.Context, hallID int) (*Cinema, error)
}
