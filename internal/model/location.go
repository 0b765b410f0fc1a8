package model

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocationType 机构类型
type LocationType string

const (
	LocationHQ               LocationType = "hq"                       // 总部
	LocationPortOffice       LocationType = "port-office"              // 港口办事处
	LocationVirtualSatellite LocationType = "virtual-satellite-office" // 虚拟卫星办事处

	// LocationLegacySatellite 旧版存档中的类型值，仅为兼容历史数据保留，
	// 新代码不再产生该值。
	LocationLegacySatellite LocationType = "satellite"
)

// ShipTypeRevenueLine 单一船型的年挂靠量与费率
type ShipTypeRevenueLine struct {
	Type         string  `json:"type"`
	Calls        int     `json:"calls"`
	FeePerCall   float64 `json:"feePerCall"`
	FundsPerCall float64 `json:"fundsPerCall"` // 代垫资金，仅信息性字段，不计入代理收入
	Enabled      bool    `json:"enabled"`
}

// MarginRevenue 按比例加成的收入项（船舶服务费 / 佣金）
type MarginRevenue struct {
	Enabled       bool    `json:"enabled"`
	MarginPercent float64 `json:"marginPercent"`
}

// DocumentationRevenue 单证收入（手工填报）
type DocumentationRevenue struct {
	ManualAmount float64 `json:"manualAmount"`
}

// Revenue 机构收入结构
type Revenue struct {
	ShipTypes     []ShipTypeRevenueLine `json:"shipTypes"`
	Husbandry     MarginRevenue         `json:"husbandry"`
	Commission    MarginRevenue         `json:"commission"`
	Documentation DocumentationRevenue  `json:"documentation"`
}

// Location 一个办事机构（总部或港口/虚拟办事处）
type Location struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Type           LocationType  `json:"type"`
	State          string        `json:"state"`
	Active         bool          `json:"active"` // 停用机构不计入方案级汇总，但仍保留在存储中
	CorporateStaff []StaffMember `json:"corporateStaff"`
	PortStaff      []StaffMember `json:"portStaff"`
	Revenue        Revenue       `json:"revenue"`
	Overhead       Overhead      `json:"overhead"`
}

// ---- 构造配置（部分输入，逐字段补默认值） ----

// ShipTypeInput 船型收入行的部分输入
type ShipTypeInput struct {
	Type         string  `json:"type"`
	Calls        int     `json:"calls"`
	FeePerCall   float64 `json:"feePerCall"`
	FundsPerCall float64 `json:"fundsPerCall"`
	Enabled      *bool   `json:"enabled"`
}

// MarginRevenueConfig 加成收入项的部分输入
type MarginRevenueConfig struct {
	Enabled       *bool    `json:"enabled"`
	MarginPercent *float64 `json:"marginPercent"`
}

// RevenueConfig 收入结构的部分输入
type RevenueConfig struct {
	ShipTypes     []ShipTypeInput       `json:"shipTypes"`
	Husbandry     *MarginRevenueConfig  `json:"husbandry"`
	Commission    *MarginRevenueConfig  `json:"commission"`
	Documentation *DocumentationRevenue `json:"documentation"`
}

// OfficeSpaceConfig 办公场地的部分输入
type OfficeSpaceConfig struct {
	Sqft        *float64 `json:"sqft"`
	RentClass   string   `json:"rentClass"`
	CostPerSqft *float64 `json:"costPerSqft"`
}

// VariableCostsConfig 变动成本的部分输入
type VariableCostsConfig struct {
	MilesPerCall *float64 `json:"milesPerCall"`
	VehicleType  string   `json:"vehicleType"`
	CostPerCall  float64  `json:"costPerCall"`
}

// OverheadConfig 管理费用的部分输入
type OverheadConfig struct {
	OfficeSpace   *OfficeSpaceConfig
	VariableCosts *VariableCostsConfig
	Categories    map[string]OverheadCategory
}

// UnmarshalJSON 与 Overhead 相同的扁平布局
func (o *OverheadConfig) UnmarshalJSON(data []byte) error {
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
			log.Printf("overhead 类目 %s 解析失败，已忽略: %v", k, err)
			continue
		}
		o.Categories[k] = cat
	}
	return nil
}

// LocationConfig 机构构造配置
type LocationConfig struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Type           LocationType    `json:"type"`
	State          string          `json:"state"`
	Active         *bool           `json:"active"`
	CorporateStaff []StaffInput    `json:"corporateStaff"`
	PortStaff      []StaffInput    `json:"portStaff"`
	Revenue        *RevenueConfig  `json:"revenue"`
	Overhead       *OverheadConfig `json:"overhead"`
}

// NewLocation 按配置构造机构，缺省字段逐项补默认值
func NewLocation(cfg LocationConfig) *Location {
	loc := &Location{
		ID:     stringOr(cfg.ID, newEntityID("loc")),
		Name:   stringOr(cfg.Name, "New Location"),
		Type:   LocationType(stringOr(string(cfg.Type), string(LocationPortOffice))),
		State:  cfg.State,
		Active: boolOr(cfg.Active, true),
	}

	loc.CorporateStaff = normalizeStaffList(cfg.CorporateStaff)
	loc.PortStaff = normalizeStaffList(cfg.PortStaff)
	loc.Revenue = buildRevenue(cfg.Revenue)
	loc.Overhead = buildOverhead(cfg.Overhead)

	// 构造时若未提供派生值则立即补算
	if loc.Overhead.VariableCosts.CostPerCall == 0 {
		loc.UpdateVariableCostPerCall()
	}

	return loc
}

// LocationFromJSON 从持久化 JSON 还原机构（id 保持不变）
func LocationFromJSON(data []byte) (*Location, error) {
	var cfg LocationConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("解析机构 JSON 失败: %w", err)
	}
	return NewLocation(cfg), nil
}

func normalizeStaffList(in []StaffInput) []StaffMember {
	out := make([]StaffMember, 0, len(in))
	for _, s := range in {
		out = append(out, NormalizeStaff(s))
	}
	return out
}

func buildRevenue(cfg *RevenueConfig) Revenue {
	if cfg == nil {
		cfg = &RevenueConfig{}
	}

	shipTypes := make([]ShipTypeRevenueLine, 0, len(cfg.ShipTypes))
	for _, st := range cfg.ShipTypes {
		shipTypes = append(shipTypes, ShipTypeRevenueLine{
			Type:         st.Type,
			Calls:        st.Calls,
			FeePerCall:   st.FeePerCall,
			FundsPerCall: st.FundsPerCall,
			Enabled:      boolOr(st.Enabled, true),
		})
	}

	rev := Revenue{
		ShipTypes: shipTypes,
		Husbandry: MarginRevenue{Enabled: true, MarginPercent: 9},
		Commission: MarginRevenue{
			Enabled:       true,
			MarginPercent: 1.5,
		},
	}
	if cfg.Husbandry != nil {
		rev.Husbandry.Enabled = boolOr(cfg.Husbandry.Enabled, true)
		rev.Husbandry.MarginPercent = floatOr(cfg.Husbandry.MarginPercent, 9)
	}
	if cfg.Commission != nil {
		rev.Commission.Enabled = boolOr(cfg.Commission.Enabled, true)
		rev.Commission.MarginPercent = floatOr(cfg.Commission.MarginPercent, 1.5)
	}
	if cfg.Documentation != nil {
		rev.Documentation.ManualAmount = cfg.Documentation.ManualAmount
	}
	return rev
}

// defaultOverheadCategories 新建机构的默认管理费用类目
func defaultOverheadCategories() map[string]OverheadCategory {
	return map[string]OverheadCategory{
		"insurance": {
			"longshoremen":     25000,
			"errorsOmissions":  50000,
			"generalLiability": 15000,
		},
		"technology": {
			"office365":       3600,
			"erpNetSuite":     0, // 仅总部启用
			"crmDynamics":     12000,
			"specializedSaaS": 30000,
		},
		"regulatory": {
			"customsBond":  15000,
			"fmcLicensing": 5000,
		},
		"professionalServices": {
			"legal":      15000,
			"accounting": 25000,
			"consulting": 10000,
		},
		"officeOperations": {
			"utilities":          12000,
			"officeSupplies":     8000,
			"maintenanceRepairs": 6000,
			"janitorial":         8000,
		},
		"communications": {
			"phoneSystems":  6000,
			"mobileDevices": 4000,
		},
		"employeeRelated": {
			"trainingDevelopment": 10000,
			"recruiting":          8000,
			"travelEntertainment": 12000,
		},
		"vehicleTransport": {
			"vehicleMaintenance": 12000,
			"parking":            3000,
		},
		"other": {
			"miscellaneous": 0,
		},
	}
}

func buildOverhead(cfg *OverheadConfig) Overhead {
	oh := Overhead{
		OfficeSpace: OfficeSpace{
			Sqft:        2500,
			RentClass:   RentClassB,
			CostPerSqft: 20,
		},
		VariableCosts: VariableCosts{
			MilesPerCall: 25,
			VehicleType:  VehicleCompanySedan,
		},
	}

	if cfg == nil {
		oh.Categories = defaultOverheadCategories()
		return oh
	}

	if cfg.OfficeSpace != nil {
		oh.OfficeSpace.Sqft = floatOr(cfg.OfficeSpace.Sqft, 2500)
		oh.OfficeSpace.RentClass = RentClass(stringOr(cfg.OfficeSpace.RentClass, string(RentClassB)))
		oh.OfficeSpace.CostPerSqft = floatOr(cfg.OfficeSpace.CostPerSqft, 20)
	}
	if cfg.VariableCosts != nil {
		oh.VariableCosts.MilesPerCall = floatOr(cfg.VariableCosts.MilesPerCall, 25)
		oh.VariableCosts.VehicleType = VehicleType(stringOr(cfg.VariableCosts.VehicleType, string(VehicleCompanySedan)))
		oh.VariableCosts.CostPerCall = cfg.VariableCosts.CostPerCall
	}

	// 动态类目：配置提供时按原样接收（保证序列化往返一致），
	// 完全缺省时才使用默认类目集
	if cfg.Categories != nil {
		oh.Categories = make(map[string]OverheadCategory, len(cfg.Categories))
		for k, v := range cfg.Categories {
			oh.Categories[k] = v.Clone()
		}
	} else {
		oh.Categories = defaultOverheadCategories()
	}
	return oh
}

func newEntityID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), suffix)
}

// ---- 变动成本 ----

// UpdateVariableCostPerCall 重算单航次变动成本
// 任何修改 milesPerCall 或 vehicleType 的调用方必须随后调用本方法，
// 数据层不会在字段赋值时自动触发。
func (l *Location) UpdateVariableCostPerCall() {
	vc := &l.Overhead.VariableCosts
	vc.CostPerCall = vc.MilesPerCall * CostPerMile(vc.VehicleType)
}

// ---- 办公面积 ----

// RecommendedSqft 推荐办公面积的拆解结果
type RecommendedSqft struct {
	WorkspaceSqft  int `json:"workspaceSqft"`
	CommonAreaSqft int `json:"commonAreaSqft"`
	TotalSqft      int `json:"totalSqft"`
	EmployeeCount  int `json:"employeeCount"`
}

// CalculateRecommendedSqft 按团队构成估算推荐办公面积
// 高管 150 sqft/人，经理层 100 sqft/人，普通员工 75 sqft/人；
// 公共区域（会议室、休息区、前台）按工位面积的 40% 追加。
func (l *Location) CalculateRecommendedSqft() RecommendedSqft {
	var workspace float64

	for _, s := range l.CorporateStaff {
		workspace += float64(s.Count) * ClassifyCorporateOfficeRole(s.Position).SqftPerPerson()
	}
	for _, s := range l.PortStaff {
		workspace += float64(s.Count) * ClassifyPortOfficeRole(s.Position).SqftPerPerson()
	}

	employeeCount := 0
	for _, s := range l.CorporateStaff {
		employeeCount += s.Count
	}
	for _, s := range l.PortStaff {
		employeeCount += s.Count
	}

	return RecommendedSqft{
		WorkspaceSqft:  int(math.Ceil(workspace)),
		CommonAreaSqft: int(math.Ceil(workspace * 0.4)),
		TotalSqft:      int(math.Ceil(workspace * 1.4)),
		EmployeeCount:  employeeCount,
	}
}

// AutoScaleOfficeSqft 将推荐总面积直接写入办公场地配置
func (l *Location) AutoScaleOfficeSqft() {
	l.Overhead.OfficeSpace.Sqft = float64(l.CalculateRecommendedSqft().TotalSqft)
}

// RentRange 某一租金等级的典型区间
type RentRange struct {
	Min         float64 `json:"min"`
	Typical     float64 `json:"typical"`
	Max         float64 `json:"max"`
	Description string  `json:"description"`
}

var rentRanges = map[RentClass]RentRange{
	RentClassA: {
		Min:         30,
		Typical:     40,
		Max:         50,
		Description: "Class A - Premium downtown, new construction, high-end finishes",
	},
	RentClassB: {
		Min:         15,
		Typical:     20,
		Max:         25,
		Description: "Class B - Mid-range, suburban/secondary, standard finishes",
	},
}

// GetTypicalRentPerSqft 返回租金等级的典型区间
// rentClass 为空时使用当前配置的等级；未知等级按乙级处理。
func (l *Location) GetTypicalRentPerSqft(rentClass RentClass) RentRange {
	if rentClass == "" {
		rentClass = l.Overhead.OfficeSpace.RentClass
	}
	if r, ok := rentRanges[rentClass]; ok {
		return r
	}
	return rentRanges[RentClassB]
}

// UpdateRentPerSqft 按当前租金等级的典型值覆盖单价（丢弃手工输入值）
func (l *Location) UpdateRentPerSqft() {
	l.Overhead.OfficeSpace.CostPerSqft = l.GetTypicalRentPerSqft("").Typical
}

// ---- 员工 ----

// AddStaff 向指定名册追加员工条目（入库前规范化）
func (l *Location) AddStaff(roster StaffRoster, in StaffInput) {
	staff := NormalizeStaff(in)
	switch roster {
	case RosterCorporate:
		l.CorporateStaff = append(l.CorporateStaff, staff)
	case RosterPort:
		l.PortStaff = append(l.PortStaff, staff)
	}
}

// RemoveStaff 按下标移除员工条目
// 移除后后续下标前移，调用方不得缓存旧下标。
func (l *Location) RemoveStaff(roster StaffRoster, index int) {
	switch roster {
	case RosterCorporate:
		if index >= 0 && index < len(l.CorporateStaff) {
			l.CorporateStaff = append(l.CorporateStaff[:index], l.CorporateStaff[index+1:]...)
		}
	case RosterPort:
		if index >= 0 && index < len(l.PortStaff) {
			l.PortStaff = append(l.PortStaff[:index], l.PortStaff[index+1:]...)
		}
	}
}

// GetTotalEmployeeCount 启用员工总人数（两个名册合计）
func (l *Location) GetTotalEmployeeCount() int {
	count := 0
	for _, s := range l.CorporateStaff {
		if s.Enabled {
			count += s.Count
		}
	}
	for _, s := range l.PortStaff {
		if s.Enabled {
			count += s.Count
		}
	}
	return count
}

// ---- 管理费用类目 ----

// AddOverheadCategory 新增动态类目
// 受保护类目或已存在的键返回 false，不抛错误。
func (l *Location) AddOverheadCategory(key, name string) bool {
	if isProtectedCategory(key) {
		log.Printf("不能添加受保护类目: %s", key)
		return false
	}
	if _, exists := l.Overhead.Categories[key]; exists {
		log.Printf("类目已存在: %s", key)
		return false
	}
	l.Overhead.Categories[key] = OverheadCategory{}
	return true
}

// RemoveOverheadCategory 删除动态类目（连同其所有条目）
func (l *Location) RemoveOverheadCategory(key string) bool {
	if isProtectedCategory(key) {
		log.Printf("不能删除受保护类目: %s", key)
		return false
	}
	if _, exists := l.Overhead.Categories[key]; !exists {
		log.Printf("类目不存在: %s", key)
		return false
	}
	delete(l.Overhead.Categories, key)
	return true
}

// AddOverheadItem 向已有类目添加条目
func (l *Location) AddOverheadItem(category, item string, amount float64) bool {
	cat, ok := l.categoryForItemOp(category)
	if !ok {
		return false
	}
	cat[item] = amount
	return true
}

// UpdateOverheadItem 更新类目条目金额
func (l *Location) UpdateOverheadItem(category, item string, amount float64) bool {
	cat, ok := l.categoryForItemOp(category)
	if !ok {
		return false
	}
	cat[item] = amount
	return true
}

// RemoveOverheadItem 删除类目条目
func (l *Location) RemoveOverheadItem(category, item string) bool {
	cat, ok := l.categoryForItemOp(category)
	if !ok {
		return false
	}
	delete(cat, item)
	return true
}

func (l *Location) categoryForItemOp(category string) (OverheadCategory, bool) {
	if isProtectedCategory(category) {
		log.Printf("受保护类目不接受通用条目操作: %s", category)
		return nil, false
	}
	cat, exists := l.Overhead.Categories[category]
	if !exists {
		log.Printf("类目不存在: %s", category)
		return nil, false
	}
	return cat, true
}

// ---- 船型收入 ----

// AddShipType 追加船型收入行
func (l *Location) AddShipType(shipType string, calls int, feePerCall, fundsPerCall float64) {
	l.Revenue.ShipTypes = append(l.Revenue.ShipTypes, ShipTypeRevenueLine{
		Type:         shipType,
		Calls:        calls,
		FeePerCall:   feePerCall,
		FundsPerCall: fundsPerCall,
		Enabled:      true,
	})
}

// RemoveShipType 按下标移除船型收入行
func (l *Location) RemoveShipType(index int) {
	if index >= 0 && index < len(l.Revenue.ShipTypes) {
		l.Revenue.ShipTypes = append(l.Revenue.ShipTypes[:index], l.Revenue.ShipTypes[index+1:]...)
	}
}

// GetTotalCalls 启用船型的年挂靠量合计
func (l *Location) GetTotalCalls() int {
	total := 0
	for _, st := range l.Revenue.ShipTypes {
		if st.Enabled {
			total += st.Calls
		}
	}
	return total
}

// ---- 复制 ----

// Clone 深拷贝机构：生成新 id，名称追加 " (Copy)"，
// 员工/收入/管理费用全部按值复制，与原机构不共享任何引用。
func (l *Location) Clone() *Location {
	corporate := make([]StaffMember, len(l.CorporateStaff))
	copy(corporate, l.CorporateStaff)
	port := make([]StaffMember, len(l.PortStaff))
	copy(port, l.PortStaff)

	shipTypes := make([]ShipTypeRevenueLine, len(l.Revenue.ShipTypes))
	copy(shipTypes, l.Revenue.ShipTypes)

	return &Location{
		ID:             newEntityID("loc"),
		Name:           l.Name + " (Copy)",
		Type:           l.Type,
		State:          l.State,
		Active:         l.Active,
		CorporateStaff: corporate,
		PortStaff:      port,
		Revenue: Revenue{
			ShipTypes:     shipTypes,
			Husbandry:     l.Revenue.Husbandry,
			Commission:    l.Revenue.Commission,
			Documentation: l.Revenue.Documentation,
		},
		Overhead: l.Overhead.Clone(),
	}
}
