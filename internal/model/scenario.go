package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// ModelType 方案运营模式
type ModelType string

const (
	ModelTraditional ModelType = "traditional" // 传统模式
	ModelAIEnabled   ModelType = "ai-enabled"  // AI 增效模式
)

// AIReductionFactors AI 增效模式下的人力缩减系数
type AIReductionFactors struct {
	DocumentationStaff float64 `json:"documentationStaff"` // 单证员缩减比例
	AccountingClerks   float64 `json:"accountingClerks"`   // 会计文员缩减比例
	OpsAdminClerks     float64 `json:"opsAdminClerks"`     // 作业行政文员缩减比例
	TechnologyIncrease float64 `json:"technologyIncrease"` // AI 系统新增技术投入（美元）
}

// GlobalAssumptions 方案级全局假设
type GlobalAssumptions struct {
	HealthInsurancePerEmployee float64            `json:"healthInsurancePerEmployee"`
	Retirement401kPercent      float64            `json:"retirement401kPercent"`
	AIReductionFactors         AIReductionFactors `json:"aiReductionFactors"`
}

// CustomTEItem 企业级自定义差旅招待条目
type CustomTEItem struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// CorporateIndirectOverhead 企业级间接费用（不分摊到任何机构）
type CorporateIndirectOverhead struct {
	ExecutiveCompensation float64        `json:"executiveCompensation"`
	CorporateLegal        float64        `json:"corporateLegal"`
	CorporateAccounting   float64        `json:"corporateAccounting"`
	CorporateInsurance    float64        `json:"corporateInsurance"`
	CorporateTechnology   float64        `json:"corporateTechnology"`
	CustomTEItems         []CustomTEItem `json:"customTEItems"`
}

// Total 企业级间接费用合计
func (c *CorporateIndirectOverhead) Total() float64 {
	total := c.ExecutiveCompensation + c.CorporateLegal + c.CorporateAccounting +
		c.CorporateInsurance + c.CorporateTechnology
	for _, item := range c.CustomTEItems {
		total += item.Amount
	}
	return total
}

// Consolidated 合并结果快照
// 方案本身不计算这些值，由外部计算引擎通过 UpdateConsolidated 写回。
type Consolidated struct {
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalCosts     float64 `json:"totalCosts"`
	TotalCalls     int     `json:"totalCalls"`
	RevenuePerCall float64 `json:"revenuePerCall"`
	CostPerCall    float64 `json:"costPerCall"`
	DeltaPerCall   float64 `json:"deltaPerCall"`
	EBITDA         float64 `json:"ebitda"`
	EBITDAMargin   float64 `json:"ebitdaMargin"`
	BreakEvenCalls float64 `json:"breakEvenCalls"`
}

// ConsolidatedPatch 合并结果的部分更新，nil 字段保持原值
type ConsolidatedPatch struct {
	TotalRevenue   *float64 `json:"totalRevenue"`
	TotalCosts     *float64 `json:"totalCosts"`
	TotalCalls     *int     `json:"totalCalls"`
	RevenuePerCall *float64 `json:"revenuePerCall"`
	CostPerCall    *float64 `json:"costPerCall"`
	DeltaPerCall   *float64 `json:"deltaPerCall"`
	EBITDA         *float64 `json:"ebitda"`
	EBITDAMargin   *float64 `json:"ebitdaMargin"`
	BreakEvenCalls *float64 `json:"breakEvenCalls"`
}

// Scenario 一个完整的规划方案：机构集合 + 全局假设 + 企业级间接费用
type Scenario struct {
	ID                        string                    `json:"id"`
	Name                      string                    `json:"name"`
	ModelType                 ModelType                 `json:"modelType"`
	Created                   string                    `json:"created"`
	LastModified              string                    `json:"lastModified"`
	Locations                 []*Location               `json:"locations"`
	GlobalAssumptions         GlobalAssumptions         `json:"globalAssumptions"`
	CorporateIndirectOverhead CorporateIndirectOverhead `json:"corporateIndirectOverhead"`
	Consolidated              Consolidated              `json:"consolidated"`
}

// ---- 构造配置 ----

// GlobalAssumptionsConfig 全局假设的部分输入
type GlobalAssumptionsConfig struct {
	HealthInsurancePerEmployee *float64                  `json:"healthInsurancePerEmployee"`
	Retirement401kPercent      *float64                  `json:"retirement401kPercent"`
	AIReductionFactors         *AIReductionFactorsConfig `json:"aiReductionFactors"`
}

// AIReductionFactorsConfig AI 缩减系数的部分输入
type AIReductionFactorsConfig struct {
	DocumentationStaff *float64 `json:"documentationStaff"`
	AccountingClerks   *float64 `json:"accountingClerks"`
	OpsAdminClerks     *float64 `json:"opsAdminClerks"`
	TechnologyIncrease *float64 `json:"technologyIncrease"`
}

// CorporateIndirectOverheadConfig 企业级间接费用的部分输入
type CorporateIndirectOverheadConfig struct {
	ExecutiveCompensation *float64       `json:"executiveCompensation"`
	CorporateLegal        *float64       `json:"corporateLegal"`
	CorporateAccounting   *float64       `json:"corporateAccounting"`
	CorporateInsurance    *float64       `json:"corporateInsurance"`
	CorporateTechnology   *float64       `json:"corporateTechnology"`
	CustomTEItems         []CustomTEItem `json:"customTEItems"`
}

// ScenarioConfig 方案构造配置
type ScenarioConfig struct {
	ID                        string                           `json:"id"`
	Name                      string                           `json:"name"`
	ModelType                 ModelType                        `json:"modelType"`
	Created                   string                           `json:"created"`
	LastModified              string                           `json:"lastModified"`
	Locations                 []LocationConfig                 `json:"locations"`
	GlobalAssumptions         *GlobalAssumptionsConfig         `json:"globalAssumptions"`
	CorporateIndirectOverhead *CorporateIndirectOverheadConfig `json:"corporateIndirectOverhead"`
	Consolidated              *Consolidated                    `json:"consolidated"`
}

// NewScenario 按配置构造方案
func NewScenario(cfg ScenarioConfig) *Scenario {
	now := nowISO()
	s := &Scenario{
		ID:           stringOr(cfg.ID, newEntityID("scenario")),
		Name:         stringOr(cfg.Name, "New Scenario"),
		ModelType:    ModelType(stringOr(string(cfg.ModelType), string(ModelTraditional))),
		Created:      stringOr(cfg.Created, now),
		LastModified: stringOr(cfg.LastModified, now),
	}

	s.Locations = make([]*Location, 0, len(cfg.Locations))
	for _, lc := range cfg.Locations {
		s.Locations = append(s.Locations, NewLocation(lc))
	}

	s.GlobalAssumptions = buildGlobalAssumptions(cfg.GlobalAssumptions)
	s.CorporateIndirectOverhead = buildCorporateIndirect(cfg.CorporateIndirectOverhead)
	if cfg.Consolidated != nil {
		s.Consolidated = *cfg.Consolidated
	}

	return s
}

// ScenarioFromJSON 从持久化 JSON 还原方案
func ScenarioFromJSON(data []byte) (*Scenario, error) {
	var cfg ScenarioConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("解析方案 JSON 失败: %w", err)
	}
	return NewScenario(cfg), nil
}

func buildGlobalAssumptions(cfg *GlobalAssumptionsConfig) GlobalAssumptions {
	ga := GlobalAssumptions{
		HealthInsurancePerEmployee: 15000,
		Retirement401kPercent:      4,
		AIReductionFactors: AIReductionFactors{
			DocumentationStaff: 0.60,
			AccountingClerks:   0.50,
			OpsAdminClerks:     0.70,
			TechnologyIncrease: 150000,
		},
	}
	if cfg == nil {
		return ga
	}
	ga.HealthInsurancePerEmployee = floatOr(cfg.HealthInsurancePerEmployee, 15000)
	ga.Retirement401kPercent = floatOr(cfg.Retirement401kPercent, 4)
	if cfg.AIReductionFactors != nil {
		ga.AIReductionFactors.DocumentationStaff = floatOr(cfg.AIReductionFactors.DocumentationStaff, 0.60)
		ga.AIReductionFactors.AccountingClerks = floatOr(cfg.AIReductionFactors.AccountingClerks, 0.50)
		ga.AIReductionFactors.OpsAdminClerks = floatOr(cfg.AIReductionFactors.OpsAdminClerks, 0.70)
		ga.AIReductionFactors.TechnologyIncrease = floatOr(cfg.AIReductionFactors.TechnologyIncrease, 150000)
	}
	return ga
}

func buildCorporateIndirect(cfg *CorporateIndirectOverheadConfig) CorporateIndirectOverhead {
	co := CorporateIndirectOverhead{
		ExecutiveCompensation: 0,
		CorporateLegal:        50000,
		CorporateAccounting:   75000,
		CorporateInsurance:    100000,
		CorporateTechnology:   150000,
		CustomTEItems:         []CustomTEItem{},
	}
	if cfg == nil {
		return co
	}
	co.ExecutiveCompensation = floatOr(cfg.ExecutiveCompensation, 0)
	co.CorporateLegal = floatOr(cfg.CorporateLegal, 50000)
	co.CorporateAccounting = floatOr(cfg.CorporateAccounting, 75000)
	co.CorporateInsurance = floatOr(cfg.CorporateInsurance, 100000)
	co.CorporateTechnology = floatOr(cfg.CorporateTechnology, 150000)
	if cfg.CustomTEItems != nil {
		co.CustomTEItems = append([]CustomTEItem{}, cfg.CustomTEItems...)
	}
	return co
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// ---- 机构生命周期 ----

// AddLocation 追加机构并更新修改时间
func (s *Scenario) AddLocation(loc *Location) {
	s.Locations = append(s.Locations, loc)
	s.UpdateLastModified()
}

// RemoveLocation 按 id 移除机构并更新修改时间
func (s *Scenario) RemoveLocation(locationID string) {
	filtered := s.Locations[:0]
	for _, l := range s.Locations {
		if l.ID != locationID {
			filtered = append(filtered, l)
		}
	}
	s.Locations = filtered
	s.UpdateLastModified()
}

// GetLocation 按 id 查找机构，不存在时返回 nil
// 方案生命周期内 id 不会复用。
func (s *Scenario) GetLocation(locationID string) *Location {
	for _, l := range s.Locations {
		if l.ID == locationID {
			return l
		}
	}
	return nil
}

// GetActiveLocations 启用中的机构
func (s *Scenario) GetActiveLocations() []*Location {
	var out []*Location
	for _, l := range s.Locations {
		if l.Active {
			out = append(out, l)
		}
	}
	return out
}

// GetHQLocation 第一个总部机构，不存在时返回 nil
// 约定一个方案至多一个总部（不强制）。
func (s *Scenario) GetHQLocation() *Location {
	for _, l := range s.Locations {
		if l.Type == LocationHQ {
			return l
		}
	}
	return nil
}

// GetPortOfficeLocations 港口办事处
func (s *Scenario) GetPortOfficeLocations() []*Location {
	return s.locationsByType(LocationPortOffice)
}

// GetVirtualSatelliteLocations 虚拟卫星办事处
func (s *Scenario) GetVirtualSatelliteLocations() []*Location {
	return s.locationsByType(LocationVirtualSatellite)
}

// GetSatelliteLocations 港口/卫星办事处
//
// Deprecated: 改用 GetPortOfficeLocations。保留是为了读取旧版存档中的
// 'satellite' 类型值。
func (s *Scenario) GetSatelliteLocations() []*Location {
	var out []*Location
	for _, l := range s.Locations {
		if l.Type == LocationLegacySatellite || l.Type == LocationPortOffice {
			out = append(out, l)
		}
	}
	return out
}

func (s *Scenario) locationsByType(t LocationType) []*Location {
	var out []*Location
	for _, l := range s.Locations {
		if l.Type == t {
			out = append(out, l)
		}
	}
	return out
}

// UpdateLastModified 更新修改时间戳
func (s *Scenario) UpdateLastModified() {
	s.LastModified = nowISO()
}

// UpdateConsolidated 合并外部计算引擎写回的结果快照（浅合并）
func (s *Scenario) UpdateConsolidated(patch ConsolidatedPatch) {
	c := &s.Consolidated
	if patch.TotalRevenue != nil {
		c.TotalRevenue = *patch.TotalRevenue
	}
	if patch.TotalCosts != nil {
		c.TotalCosts = *patch.TotalCosts
	}
	if patch.TotalCalls != nil {
		c.TotalCalls = *patch.TotalCalls
	}
	if patch.RevenuePerCall != nil {
		c.RevenuePerCall = *patch.RevenuePerCall
	}
	if patch.CostPerCall != nil {
		c.CostPerCall = *patch.CostPerCall
	}
	if patch.DeltaPerCall != nil {
		c.DeltaPerCall = *patch.DeltaPerCall
	}
	if patch.EBITDA != nil {
		c.EBITDA = *patch.EBITDA
	}
	if patch.EBITDAMargin != nil {
		c.EBITDAMargin = *patch.EBITDAMargin
	}
	if patch.BreakEvenCalls != nil {
		c.BreakEvenCalls = *patch.BreakEvenCalls
	}
	s.UpdateLastModified()
}

// Clone 深拷贝方案：新 id、新时间戳，机构与全局假设按值复制；
// 企业级间接费用与合并结果重置为默认值——克隆方案的合并数字
// 必须重新计算，不能继承。
func (s *Scenario) Clone(newName string) (*Scenario, error) {
	name := newName
	if name == "" {
		name = s.Name + " (Copy)"
	}

	// 机构经由 JSON 往返复制，保持各机构 id 不变
	locData, err := json.Marshal(s.Locations)
	if err != nil {
		return nil, fmt.Errorf("复制机构失败: %w", err)
	}
	var locCfgs []LocationConfig
	if err := json.Unmarshal(locData, &locCfgs); err != nil {
		return nil, fmt.Errorf("复制机构失败: %w", err)
	}

	ga := s.GlobalAssumptions
	clone := NewScenario(ScenarioConfig{
		ID:        newEntityID("scenario"),
		Name:      name,
		ModelType: s.ModelType,
		Locations: locCfgs,
		GlobalAssumptions: &GlobalAssumptionsConfig{
			HealthInsurancePerEmployee: &ga.HealthInsurancePerEmployee,
			Retirement401kPercent:      &ga.Retirement401kPercent,
			AIReductionFactors: &AIReductionFactorsConfig{
				DocumentationStaff: &ga.AIReductionFactors.DocumentationStaff,
				AccountingClerks:   &ga.AIReductionFactors.AccountingClerks,
				OpsAdminClerks:     &ga.AIReductionFactors.OpsAdminClerks,
				TechnologyIncrease: &ga.AIReductionFactors.TechnologyIncrease,
			},
		},
	})
	return clone, nil
}
