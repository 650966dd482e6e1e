package catalogservice

// SurfaceType тип покрытия корта
type SurfaceType string

const (
	SurfaceGlass           SurfaceType = "glass"
	SurfaceConcrete        SurfaceType = "concrete"
	SurfaceArtificialGrass SurfaceType = "artificial_grass"
)

// CourtType расположение корта
type CourtType string

const (
	CourtIndoor  CourtType = "indoor"
	CourtOutdoor CourtType = "outdoor"
)

// Court модель корта из CatalogService
type Court struct {
	ID           string      `json:"id"`
	CenterID     string      `json:"centerId"`
	Name         string      `json:"name"`
	Surface      SurfaceType `json:"surface"`
	CourtType    CourtType   `json:"courtType"`
	PricePerHour float64     `json:"pricePerHour"`
	IsActive     bool        `json:"isActive"`
}

// Center модель центра из CatalogService
type Center struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	City          string       `json:"city"`
	ManagerUserID string       `json:"managerUserId"`
	OpeningHours  WeekSchedule `json:"openingHours"`
}

// WeekSchedule расписание работы центра по дням недели
type WeekSchedule struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// DaySchedule расписание работы на один день
type DaySchedule struct {
	IsOpen    bool    `json:"isOpen"`
	OpenTime  *string `json:"openTime,omitempty"`  // "08:00"
	CloseTime *string `json:"closeTime,omitempty"` // "22:00"
}
