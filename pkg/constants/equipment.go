package constants

// Статусы оборудования.
const (
	StatusActive      = "active"
	StatusMaintenance = "maintenance"
	StatusInactive    = "inactive"
)

// Типы записей обслуживания.
const (
	MaintenancePreventive = "preventive"
	MaintenanceCorrective = "corrective"
)

// Типы событий в журнале оборудования.
const (
	EventCreated          = "created"
	EventUpdated          = "updated"
	EventArchived         = "archived"
	EventUnarchived       = "unarchived"
	EventMaintenanceAdded = "maintenance-added"
)

// DefaultServiceIntervalDays применяется, когда интервал обслуживания
// не задан или задан некорректно.
const DefaultServiceIntervalDays = 180

// Режимы сортировки списка оборудования.
const (
	SortUpdatedDesc    = "updated_desc"
	SortCreatedDesc    = "created_desc"
	SortNameAsc        = "name_asc"
	SortStatusOps      = "status_ops"
	SortNextServiceAsc = "next_service_asc"
	DefaultSortMode    = SortUpdatedDesc
)

// StatusOpsPriority задаёт операционный приоритет статусов для режима
// сортировки status_ops: maintenance раньше inactive, inactive раньше active.
func StatusOpsPriority(status string) int {
	switch status {
	case StatusMaintenance:
		return 0
	case StatusInactive:
		return 1
	case StatusActive:
		return 2
	default:
		return 3
	}
}

func IsValidSortMode(mode string) bool {
	switch mode {
	case SortUpdatedDesc, SortCreatedDesc, SortNameAsc, SortStatusOps, SortNextServiceAsc:
		return true
	}
	return false
}
