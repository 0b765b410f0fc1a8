package model

import (
	"encoding/json"
	"log"
)

// RentClass 租金等级
type RentClass string

const (
	RentClassA RentClass = "class-a" // 甲级写字楼
	RentClassB RentClass = "class-b" // 乙级写字楼
)

// VehicleType 车辆使用方式
type VehicleType string

const (
	VehicleCompanySedan         VehicleType = "company-sedan"         // 公司轿车
	VehicleCompanySUV           VehicleType = "company-suv"           // 公司 SUV
	VehicleMileageReimbursement VehicleType = "mileage-reimbursement" // 里程报销
)

// CostPerMile 按车辆类型返回每英里成本
// 公司车按整车持有成本折算；里程报销与未知类型按 IRS 标准里程费率 0.67。
func CostPerMile(vehicleType VehicleType) float64 {
	switch vehicleType {
	case VehicleCompanySedan:
		return 0.55
	case VehicleCompanySUV:
		return 0.75
	case VehicleMileageReimbursement:
		return 0.67
	default:
		return 0.67
	}
}

// OfficeSpace 办公场地（受保护类目，结构固定）
type OfficeSpace struct {
	Sqft        float64   `json:"sqft"`
	RentClass   RentClass `json:"rentClass"`
	CostPerSqft float64   `json:"costPerSqft"`
}

// VariableCosts 单航次变动成本（受保护类目，结构固定）
// CostPerCall 为派生字段：milesPerCall × 每英里成本，修改前两个字段后
// 必须调用 UpdateVariableCostPerCall 重新计算。
type VariableCosts struct {
	MilesPerCall float64     `json:"milesPerCall"`
	VehicleType  VehicleType `json:"vehicleType"`
	CostPerCall  float64     `json:"costPerCall"`
}

// OverheadCategory 管理费用类目：条目名 -> 年度金额
type OverheadCategory map[string]float64

// Total 类目内所有条目之和
func (c OverheadCategory) Total() float64 {
	var sum float64
	for _, v := range c {
		sum += v
	}
	return sum
}

// Clone 深拷贝
func (c OverheadCategory) Clone() OverheadCategory {
	if c == nil {
		return nil
	}
	out := make(OverheadCategory, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Overhead 管理费用：两个结构固定的受保护类目 + 任意动态类目
type Overhead struct {
	OfficeSpace   OfficeSpace
	VariableCosts VariableCosts
	Categories    map[string]OverheadCategory
}

// protectedCategories 不可通过通用类目 API 增删改的类目键
var protectedCategories = []string{"officeSpace", "variableCosts"}

func isProtectedCategory(key string) bool {
	for _, p := range protectedCategories {
		if key == p {
			return true
		}
	}
	return false
}

// MarshalJSON 序列化为扁平对象：受保护类目与动态类目同级
func (o Overhead) MarshalJSON() ([]byte, error) {
	m := make(map[string]interface{}, len(o.Categories)+2)
	m["officeSpace"] = o.OfficeSpace
	m["variableCosts"] = o.VariableCosts
	for k, v := range o.Categories {
		m[k] = v
	}
	return json.Marshal(m)
}

// UnmarshalJSON 从扁平对象还原：识别两个受保护键，其余进入动态类目表
func (o *Overhead) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["officeSpace"]; ok {
		if err := json.Unmarshal(v, &o.OfficeSpace); err != nil {
			return err
		}
	}
	if v, ok := raw["variableCosts"]; ok {
		if err := json.Unmarshal(v, &o.VariableCosts); err != nil {
			return err
		}
	}

	o.Categories = make(map[string]OverheadCategory)
	for k, v := range raw {
		if isProtectedCategory(k) {
			continue
		}
		var cat OverheadCategory
		if err := json.Unmarshal(v, &cat); err != nil {
			// 非数值条目直接丢弃，核心层不做输入校验
			log.Printf("overhead 类目 %s 解析失败，已忽略: %v", k, err)
			continue
		}
		o.Categories[k] = cat
	}
	return nil
}

// Clone 深拷贝
func (o Overhead) Clone() Overhead {
	out := Overhead{
		OfficeSpace:   o.OfficeSpace,
		VariableCosts: o.VariableCosts,
		Categories:    make(map[string]OverheadCategory, len(o.Categories)),
	}
	for k, v := range o.Categories {
		out.Categories[k] = v.Clone()
	}
	return out
}
