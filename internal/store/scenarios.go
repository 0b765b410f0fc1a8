package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"shipagency/internal/model"
)

// ScenarioMeta 方案列表项（不含完整文档）
type ScenarioMeta struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	ModelType     model.ModelType `json:"modelType"`
	Created       string          `json:"created"`
	LastModified  string          `json:"lastModified"`
	LocationCount int             `json:"locationCount"`
}

// SaveScenario 保存方案（存在则整体覆盖）
func (s *Store) SaveScenario(sc *model.Scenario) error {
	data, err := json.Marshal(sc)
	if err != nil {
		return fmt.Errorf("failed to marshal scenario %s: %w", sc.ID, err)
	}

	_, err = s.db.Exec(`
		INSERT INTO scenarios (id, name, model_type, created, last_modified, data)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			model_type = excluded.model_type,
			last_modified = excluded.last_modified,
			data = excluded.data,
			updated_at = CURRENT_TIMESTAMP
	`, sc.ID, sc.Name, string(sc.ModelType), sc.Created, sc.LastModified, string(data))
	if err != nil {
		return fmt.Errorf("failed to save scenario %s: %w", sc.ID, err)
	}
	return nil
}

// GetScenario 按 id 读取方案
func (s *Store) GetScenario(id string) (*model.Scenario, error) {
	var data string
	err := s.db.QueryRow("SELECT data FROM scenarios WHERE id = ?", id).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("scenario not found: %s", id)
		}
		return nil, err
	}

	sc, err := model.ScenarioFromJSON([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode scenario %s: %w", id, err)
	}
	return sc, nil
}

// ListScenarios 按最后修改时间倒序列出所有方案元数据
func (s *Store) ListScenarios() ([]ScenarioMeta, error) {
	rows, err := s.db.Query(`
		SELECT id, name, model_type, created, last_modified, data
		FROM scenarios ORDER BY last_modified DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var metas []ScenarioMeta
	for rows.Next() {
		var m ScenarioMeta
		var modelType, data string
		if err := rows.Scan(&m.ID, &m.Name, &modelType, &m.Created, &m.LastModified, &data); err != nil {
			return nil, err
		}
		m.ModelType = model.ModelType(modelType)

		// 机构数不单独建列，从文档中取
		var doc struct {
			Locations []json.RawMessage `json:"locations"`
		}
		if err := json.Unmarshal([]byte(data), &doc); err == nil {
			m.LocationCount = len(doc.Locations)
		}
		metas = append(metas, m)
	}
	return metas, rows.Err()
}

// DeleteScenario 删除方案，id 不存在时返回错误
func (s *Store) DeleteScenario(id string) error {
	result, err := s.db.Exec("DELETE FROM scenarios WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("scenario not found: %s", id)
	}
	return nil
}

// ScenarioExists 判断方案是否存在
func (s *Store) ScenarioExists(id string) (bool, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(1) FROM scenarios WHERE id = ?", id).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
