package model

// ShipTypeDefault 船型默认费率
type ShipTypeDefault struct {
	Type         string  `json:"type"`
	FeePerCall   float64 `json:"feePerCall"`
	FundsPerCall float64 `json:"fundsPerCall"`
}

// DefaultShipTypes 标准船型费率表
var DefaultShipTypes = []ShipTypeDefault{
	{Type: "Break-bulk", FeePerCall: 4500, FundsPerCall: 15000},
	{Type: "Coal", FeePerCall: 9800, FundsPerCall: 100000},
	{Type: "Petcoke", FeePerCall: 10500, FundsPerCall: 100000},
	{Type: "Grain", FeePerCall: 12000, FundsPerCall: 135000},
	{Type: "Cement", FeePerCall: 10500, FundsPerCall: 75000},
	{Type: "Fertilizer", FeePerCall: 10500, FundsPerCall: 120000},
	{Type: "Misc Bulk", FeePerCall: 9500, FundsPerCall: 54000},
	{Type: "Belt Ship Bulkers", FeePerCall: 3500, FundsPerCall: 12000},
	{Type: "Cruise Ships", FeePerCall: 1500, FundsPerCall: 12000},
	{Type: "Container", FeePerCall: 500, FundsPerCall: 5000},
	{Type: "RoRo", FeePerCall: 750, FundsPerCall: 5000},
	{Type: "Misc Port Calls", FeePerCall: 1500, FundsPerCall: 25000},
	{Type: "Parcel Tanker", FeePerCall: 3750, FundsPerCall: 25000},
	{Type: "Gas Carrier", FeePerCall: 3750, FundsPerCall: 25000},
	{Type: "LNG Carrier", FeePerCall: 4500, FundsPerCall: 35000},
	{Type: "Product Tankers", FeePerCall: 3500, FundsPerCall: 35000},
	{Type: "Crude Tankers", FeePerCall: 4000, FundsPerCall: 35000},
}

// PositionDefault 岗位薪资区间与默认值
type PositionDefault struct {
	Position      string  `json:"position"`
	SalaryMin     float64 `json:"salaryMin"`
	SalaryMax     float64 `json:"salaryMax"`
	SalaryDefault float64 `json:"salaryDefault"`
}

// DefaultCorporatePositions 企业职能岗位表
var DefaultCorporatePositions = []PositionDefault{
	{Position: "CEO/President", SalaryMin: 225000, SalaryMax: 500000, SalaryDefault: 350000},
	{Position: "CFO", SalaryMin: 275000, SalaryMax: 275000, SalaryDefault: 275000},
	{Position: "Controller", SalaryMin: 165000, SalaryMax: 165000, SalaryDefault: 165000},
	{Position: "VP Ops", SalaryMin: 225000, SalaryMax: 225000, SalaryDefault: 225000},
	{Position: "VP Commercial", SalaryMin: 225000, SalaryMax: 225000, SalaryDefault: 225000},
	{Position: "Commercial Manager", SalaryMin: 125000, SalaryMax: 175000, SalaryDefault: 150000},
	{Position: "Executive Admin", SalaryMin: 90000, SalaryMax: 90000, SalaryDefault: 90000},
	{Position: "Marketing Manager", SalaryMin: 175000, SalaryMax: 175000, SalaryDefault: 175000},
	{Position: "HR Manager", SalaryMin: 200000, SalaryMax: 200000, SalaryDefault: 200000},
	{Position: "HR Clerk/Payroll", SalaryMin: 85000, SalaryMax: 85000, SalaryDefault: 85000},
	{Position: "IT Manager", SalaryMin: 175000, SalaryMax: 175000, SalaryDefault: 175000},
	{Position: "Desktop Support", SalaryMin: 95000, SalaryMax: 95000, SalaryDefault: 95000},
	{Position: "Accounting Manager", SalaryMin: 125000, SalaryMax: 125000, SalaryDefault: 125000},
	{Position: "Accounting Supervisor", SalaryMin: 80000, SalaryMax: 80000, SalaryDefault: 80000},
	{Position: "Accounting Clerk", SalaryMin: 65000, SalaryMax: 65000, SalaryDefault: 65000},
	{Position: "Documentation Manager", SalaryMin: 95000, SalaryMax: 95000, SalaryDefault: 95000},
	{Position: "Document Clerk", SalaryMin: 65000, SalaryMax: 65000, SalaryDefault: 65000},
}

// DefaultPortPositions 港口作业岗位表
var DefaultPortPositions = []PositionDefault{
	{Position: "Regional Manager Ops", SalaryMin: 125000, SalaryMax: 175000, SalaryDefault: 150000},
	{Position: "Port Ops Manager", SalaryMin: 120000, SalaryMax: 165000, SalaryDefault: 142500},
	{Position: "Asst Ops Manager", SalaryMin: 95000, SalaryMax: 120000, SalaryDefault: 107500},
	{Position: "Ship Agent", SalaryMin: 95000, SalaryMax: 120000, SalaryDefault: 107500},
	{Position: "Boarding Agent/Runner", SalaryMin: 65000, SalaryMax: 95000, SalaryDefault: 80000},
	{Position: "Ops Admin Clerk", SalaryMin: 65000, SalaryMax: 65000, SalaryDefault: 65000},
}

// PredefinedLocation 预置港口机构
type PredefinedLocation struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Type  LocationType `json:"type"`
	State string       `json:"state"`
}

// PredefinedLocations 预置机构清单：休斯顿总部 + 12 个港口办事处
var PredefinedLocations = []PredefinedLocation{
	{ID: "houston-hq", Name: "Houston", Type: LocationHQ, State: "TX"},
	{ID: "new-york", Name: "New York", Type: LocationPortOffice, State: "NY"},
	{ID: "philadelphia", Name: "Philadelphia", Type: LocationPortOffice, State: "PA"},
	{ID: "norfolk", Name: "Norfolk", Type: LocationPortOffice, State: "VA"},
	{ID: "savannah", Name: "Savannah", Type: LocationPortOffice, State: "GA"},
	{ID: "jacksonville", Name: "Jacksonville", Type: LocationPortOffice, State: "FL"},
	{ID: "port-everglades", Name: "Port Everglades", Type: LocationPortOffice, State: "FL"},
	{ID: "tampa", Name: "Tampa", Type: LocationPortOffice, State: "FL"},
	{ID: "mobile", Name: "Mobile", Type: LocationPortOffice, State: "AL"},
	{ID: "new-orleans", Name: "New Orleans", Type: LocationPortOffice, State: "LA"},
	{ID: "long-beach", Name: "Long Beach", Type: LocationPortOffice, State: "CA"},
	{ID: "portland", Name: "Portland", Type: LocationPortOffice, State: "OR"},
}
