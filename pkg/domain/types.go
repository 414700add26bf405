package domain

import "time"

type BlockStatus string

const (
	StatusPending    BlockStatus = "pending"
	StatusInProgress BlockStatus = "in-progress"
	StatusCompleted  BlockStatus = "completed"
	StatusSkipped    BlockStatus = "skipped"
)

type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

// TimeBlock is one scheduled task inside a calendar day. The time field is a
// 12-hour range like "09:00 AM - 10:00 AM".
type TimeBlock struct {
	ID            string      `json:"id"`
	Time          string      `json:"time"`
	Activity      string      `json:"activity"`
	Category      string      `json:"category,omitempty"`
	Status        BlockStatus `json:"status"`
	Description   string      `json:"description,omitempty"`
	IsAIGenerated bool        `json:"isAiGenerated,omitempty"`
}

type Message struct {
	ID      string `json:"id"`
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatSession is one persisted conversation thread with a coach persona.
// LastModified is epoch milliseconds; collections are kept sorted by it,
// newest first.
type ChatSession struct {
	ID           string    `json:"id"`
	CoachID      string    `json:"coachId"`
	Title        string    `json:"title"`
	Messages     []Message `json:"messages"`
	LastModified int64     `json:"lastModified"`
	Preview      string    `json:"preview"`
}

type SkinCare struct {
	Morning bool `json:"morning"`
	Night   bool `json:"night"`
}

type Nutrition struct {
	WaterLiters float64 `json:"waterLiters"`
	Calories    int     `json:"calories,omitempty"`
}

type HairCare struct {
	WashDay bool `json:"washDay"`
}

// LifestyleLog records daily self-care metrics. At most one log per date.
type LifestyleLog struct {
	Date      string    `json:"date"`
	SkinCare  SkinCare  `json:"skinCare"`
	Nutrition Nutrition `json:"nutrition"`
	HairCare  HairCare  `json:"hairCare"`
}

type Quote struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Author   string `json:"author"`
	IsCustom bool   `json:"isCustom"`
}

// Snippet is a saved fragment of a coach reply. Date is epoch milliseconds.
type Snippet struct {
	ID        string   `json:"id"`
	Content   string   `json:"content"`
	CoachName string   `json:"coachName"`
	Date      int64    `json:"date"`
	Tags      []string `json:"tags,omitempty"`
}

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Plan         Plan      `json:"plan"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// GeneratedBlock is one entry of an AI-generated plan before acceptance.
type GeneratedBlock struct {
	Time        string `json:"time"`
	Activity    string `json:"activity"`
	Description string `json:"description"`
}

// GeneratedDay groups generated blocks by day offset in week mode.
type GeneratedDay struct {
	DayOffset int              `json:"dayOffset"`
	Blocks    []GeneratedBlock `json:"blocks"`
}

// DayStat summarizes one calendar day for the weekly dashboard.
type DayStat struct {
	Date       string `json:"date"`
	DayName    string `json:"dayName"`
	Completion int    `json:"completion"`
	StudyHours int    `json:"studyHours"`
}
