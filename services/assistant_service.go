package services

import (
	"encoding/json"
	"fmt"
	"log"
	"sync/atomic"

	"dbhotel-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const assistantFallbackAnswer = "Sorry, the assistant is unreachable right now. Please try again."

const assistantInstruction = `You are the smart assistant for the "DB-Hotel-UP" hotel management system.
Answer front-desk staff questions using only the live data you are given.

Current data context (JSON):
%s

Guidelines:
1. Answer politely, formally and clearly.
2. When asked about free rooms, list the exact room numbers.
3. When asked about revenue, calculate from bookings and expenses.
4. Keep answers short and to the point.
5. If the data is not sufficient, say so honestly.`

// AssistantService forwards staff questions to the external language model
// together with a JSON snapshot of the current state. One outstanding request
// at a time: a second question while one is pending is rejected, mirroring a
// disabled send control rather than a queue.
type AssistantService struct {
	DB     *gorm.DB
	Client *GeminiClient

	pending atomic.Bool
}

func NewAssistantService(db *gorm.DB, client *GeminiClient) *AssistantService {
	return &AssistantService{DB: db, Client: client}
}

type assistantSnapshot struct {
	Rooms     []models.Room     `json:"rooms"`
	Bookings  []models.Booking  `json:"bookings"`
	Customers []models.Customer `json:"customers"`
	Expenses  []models.Expense  `json:"expenses"`
	Summary   struct {
		TotalRooms int `json:"totalRooms"`
		Occupied   int `json:"occupied"`
		Available  int `json:"available"`
	} `json:"summary"`
}

func (s *AssistantService) buildSnapshot() ([]byte, error) {
	var snap assistantSnapshot
	if err := s.DB.Find(&snap.Rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to load rooms: %w", err)
	}
	if err := s.DB.Find(&snap.Bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	if err := s.DB.Find(&snap.Customers).Error; err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}
	if err := s.DB.Find(&snap.Expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	snap.Summary.TotalRooms = len(snap.Rooms)
	for _, r := range snap.Rooms {
		switch r.Status {
		case models.RoomOccupied:
			snap.Summary.Occupied++
		case models.RoomAvailable:
			snap.Summary.Available++
		}
	}

	return json.Marshal(snap)
}

// Ask sends the question with the current data snapshot and returns the
// recorded exchange. External failures are folded into a fallback answer and
// never propagate as errors; only ErrAssistantBusy and snapshot/storage
// problems do.
func (s *AssistantService) Ask(question string) (*models.AssistantLog, error) {
	if !s.pending.CompareAndSwap(false, true) {
		return nil, ErrAssistantBusy
	}
	defer s.pending.Store(false)

	snapshot, err := s.buildSnapshot()
	if err != nil {
		return nil, err
	}

	answer, callErr := s.Client.Generate(geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: fmt.Sprintf(assistantInstruction, string(snapshot))}},
		},
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: question}}},
		},
	})

	status := models.AssistantSucceeded
	if callErr != nil {
		log.Printf("assistant request failed: %v", callErr)
		answer = assistantFallbackAnswer
		status = models.AssistantFailed
	}

	entry := models.AssistantLog{
		Question: question,
		Answer:   answer,
		Context:  datatypes.JSON(snapshot),
		Status:   status,
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to store assistant log: %w", err)
	}
	return &entry, nil
}

func (s *AssistantService) History(limit int) ([]models.AssistantLog, error) {
	if limit <= 0 {
		limit = 50
	}
	var logs []models.AssistantLog
	err := s.DB.Order("id DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
