package model

// BenchmarkOverhead 按公司规模档位给出的管理费用基准模板
// 金额为固定基准值，必须与既有存档保持逐项一致。
type BenchmarkOverhead struct {
	Size                 string           `json:"size"`
	ProfessionalServices OverheadCategory `json:"professionalServices"`
	OfficeOperations     OverheadCategory `json:"officeOperations"`
	Communications       OverheadCategory `json:"communications"`
	EmployeeRelated      OverheadCategory `json:"employeeRelated"`
	VehicleTransport     OverheadCategory `json:"vehicleTransport"`
	Insurance            OverheadCategory `json:"insurance"`
	Technology           OverheadCategory `json:"technology"`
}

// GetBenchmarkOverhead 按总人数返回规模档位基准
// 档位：Small（≤10）、Medium（11-50）、Large（51-125+）。
func GetBenchmarkOverhead(totalEmployees int) BenchmarkOverhead {
	if totalEmployees <= 10 {
		return BenchmarkOverhead{
			Size: "Small (1-10 employees)",
			ProfessionalServices: OverheadCategory{
				"legal":      10000,
				"accounting": 15000,
				"consulting": 5000,
			},
			OfficeOperations: OverheadCategory{
				"utilities":          6000,
				"officeSupplies":     3000,
				"maintenanceRepairs": 3000,
				"janitorial":         4000,
			},
			Communications: OverheadCategory{
				"phoneSystems":  3000,
				"mobileDevices": 2000,
			},
			EmployeeRelated: OverheadCategory{
				"trainingDevelopment": 5000,
				"recruiting":          3000,
				"travelEntertainment": 6000,
			},
			VehicleTransport: OverheadCategory{
				"vehicleMaintenance": 6000,
				"parking":            1500,
			},
			Insurance: OverheadCategory{
				"longshoremen":               15000,
				"errorsOmissions":            25000,
				"generalLiability":           8000,
				"healthInsurancePerEmployee": 15000,
			},
			Technology: OverheadCategory{
				"office365":       1200,
				"erpNetSuite":     0, // 小规模负担不起
				"crmDynamics":     0,
				"specializedSaaS": 10000,
			},
		}
	}

	if totalEmployees <= 50 {
		return BenchmarkOverhead{
			Size: "Medium (11-50 employees)",
			ProfessionalServices: OverheadCategory{
				"legal":      15000,
				"accounting": 25000,
				"consulting": 10000,
			},
			OfficeOperations: OverheadCategory{
				"utilities":          12000,
				"officeSupplies":     8000,
				"maintenanceRepairs": 6000,
				"janitorial":         8000,
			},
			Communications: OverheadCategory{
				"phoneSystems":  6000,
				"mobileDevices": 4000,
			},
			EmployeeRelated: OverheadCategory{
				"trainingDevelopment": 10000,
				"recruiting":          8000,
				"travelEntertainment": 12000,
			},
			VehicleTransport: OverheadCategory{
				"vehicleMaintenance": 12000,
				"parking":            3000,
			},
			Insurance: OverheadCategory{
				"longshoremen":               25000,
				"errorsOmissions":            50000,
				"generalLiability":           15000,
				"healthInsurancePerEmployee": 15000,
			},
			Technology: OverheadCategory{
				"office365":       3600,
				"erpNetSuite":     50000,
				"crmDynamics":     12000,
				"specializedSaaS": 30000,
			},
		}
	}

	return BenchmarkOverhead{
		Size: "Large (51-125 employees)",
		ProfessionalServices: OverheadCategory{
			"legal":      25000,
			"accounting": 40000,
			"consulting": 20000,
		},
		OfficeOperations: OverheadCategory{
			"utilities":          24000,
			"officeSupplies":     15000,
			"maintenanceRepairs": 12000,
			"janitorial":         16000,
		},
		Communications: OverheadCategory{
			"phoneSystems":  12000,
			"mobileDevices": 8000,
		},
		EmployeeRelated: OverheadCategory{
			"trainingDevelopment": 20000,
			"recruiting":          15000,
			"travelEntertainment": 24000,
		},
		VehicleTransport: OverheadCategory{
			"vehicleMaintenance": 24000,
			"parking":            6000,
		},
		Insurance: OverheadCategory{
			"longshoremen":               40000,
			"errorsOmissions":            75000,
			"generalLiability":           25000,
			"healthInsurancePerEmployee": 14000, // 团体费率下人均更低
		},
		Technology: OverheadCategory{
			"office365":       7200,
			"erpNetSuite":     100000,
			"crmDynamics":     24000,
			"specializedSaaS": 60000,
		},
	}
}

// ApplyBenchmarkOverhead 将规模档位基准覆盖写入本机构
//
// 人数按两个名册全量统计、不过滤停用条目，与 GetTotalEmployeeCount
// 的口径不同（按名册总容量选档）。不改动 officeSpace 与 variableCosts。
func (l *Location) ApplyBenchmarkOverhead() {
	totalEmployees := 0
	for _, s := range l.CorporateStaff {
		totalEmployees += s.Count
	}
	for _, s := range l.PortStaff {
		totalEmployees += s.Count
	}

	benchmark := GetBenchmarkOverhead(totalEmployees)

	// 这五个类目整体替换
	l.Overhead.Categories["professionalServices"] = benchmark.ProfessionalServices.Clone()
	l.Overhead.Categories["officeOperations"] = benchmark.OfficeOperations.Clone()
	l.Overhead.Categories["communications"] = benchmark.Communications.Clone()
	l.Overhead.Categories["employeeRelated"] = benchmark.EmployeeRelated.Clone()
	l.Overhead.Categories["vehicleTransport"] = benchmark.VehicleTransport.Clone()

	// 保险与技术类目仅覆盖基准命名的条目，保留用户自建条目；
	// healthInsurancePerEmployee 属于全局假设，不落到机构层
	insurance := l.Overhead.Categories["insurance"]
	if insurance == nil {
		insurance = OverheadCategory{}
		l.Overhead.Categories["insurance"] = insurance
	}
	insurance["longshoremen"] = benchmark.Insurance["longshoremen"]
	insurance["errorsOmissions"] = benchmark.Insurance["errorsOmissions"]
	insurance["generalLiability"] = benchmark.Insurance["generalLiability"]

	technology := l.Overhead.Categories["technology"]
	if technology == nil {
		technology = OverheadCategory{}
		l.Overhead.Categories["technology"] = technology
	}
	technology["office365"] = benchmark.Technology["office365"]
	technology["erpNetSuite"] = benchmark.Technology["erpNetSuite"]
	technology["crmDynamics"] = benchmark.Technology["crmDynamics"]
	technology["specializedSaaS"] = benchmark.Technology["specializedSaaS"]
}
