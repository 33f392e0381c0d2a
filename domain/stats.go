package domain

type StatsResponse struct {
	TotalFarmers       int `json:"totalFarmers"`
	PendingFarmers     int `json:"pendingFarmers"`
	ApprovedFarmers    int `json:"approvedFarmers"`
	TotalFactories     int `json:"totalFactories"`
	ActiveFactories    int `json:"activeFactories"`
	TotalColdStorages  int `json:"totalColdStorages"`
	OnlineStorages     int `json:"onlineStorages"`
	TotalCapacity      int `json:"totalCapacity"`
	TotalStock         int `json:"totalStock"`
	TotalInventory     int `json:"totalInventory"`
	UtilizationPercent int `json:"utilizationPercent"`
}
