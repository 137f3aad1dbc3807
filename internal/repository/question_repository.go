package repository

import (
	"math/rand"
	"physics_practice_backend/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const importBatchSize = 100

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

// QuestionFilter 题目列表筛选条件，Tags 命中任意一个即可
type QuestionFilter struct {
	Page       int
	PageSize   int
	Chapter    string
	Difficulty int
	Tags       []string
	Keyword    string
}

func (r *QuestionRepository) Create(question *model.Question) error {
	return r.DB.Create(question).Error
}

// CreateImport 在同一事务中批量写入题目并记录导入结果
func (r *QuestionRepository) CreateImport(questions []model.Question, record *model.QuestionImport) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if len(questions) > 0 {
			if err := tx.CreateInBatches(questions, importBatchSize).Error; err != nil {
				return err
			}
		}
		record.Imported = len(questions)
		return tx.Create(record).Error
	})
}

func (r *QuestionRepository) FindByID(id string) (*model.Question, error) {
	var question model.Question
	err := r.DB.Where("id = ?", id).First(&question).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *QuestionRepository) FindByIDs(ids []string) ([]model.Question, error) {
	var questions []model.Question
	if len(ids) == 0 {
		return questions, nil
	}
	err := r.DB.Where("id IN ?", ids).Find(&questions).Error
	return questions, err
}

// List 分页查询题目，按创建时间倒序
func (r *QuestionRepository) List(filter QuestionFilter) ([]model.Question, int64, error) {
	var questions []model.Question
	var total int64

	query := r.DB.Model(&model.Question{})
	if filter.Chapter != "" {
		query = query.Where("chapter = ?", filter.Chapter)
	}
	if filter.Difficulty > 0 {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if len(filter.Tags) > 0 {
		cond := r.DB.Where(datatypes.JSONArrayQuery("tags").Contains(filter.Tags[0]))
		for _, tag := range filter.Tags[1:] {
			cond = cond.Or(datatypes.JSONArrayQuery("tags").Contains(tag))
		}
		query = query.Where(cond)
	}
	if filter.Keyword != "" {
		like := "%" + filter.Keyword + "%"
		query = query.Where("title LIKE ? OR content LIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PageSize
	err := query.Order("created_at desc").Offset(offset).Limit(filter.PageSize).Find(&questions).Error
	return questions, total, err
}

// UpdateFields 按字段更新题目，记录不存在时返回 gorm.ErrRecordNotFound
func (r *QuestionRepository) UpdateFields(id string, fields map[string]interface{}) error {
	result := r.DB.Model(&model.Question{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *QuestionRepository) Delete(id string) error {
	result := r.DB.Where("id = ?", id).Delete(&model.Question{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindRandom 从满足条件的题目中随机取一段连续的题目
func (r *QuestionRepository) FindRandom(count int, chapter string, difficulty int) ([]model.Question, error) {
	query := r.DB.Model(&model.Question{})
	if chapter != "" {
		query = query.Where("chapter = ?", chapter)
	}
	if difficulty > 0 {
		query = query.Where("difficulty = ?", difficulty)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	questions := []model.Question{}
	if total == 0 {
		return questions, nil
	}

	skip := 0
	if int(total) > count {
		skip = rand.Intn(int(total) - count + 1)
	}
	err := query.Order("created_at asc").Offset(skip).Limit(count).Find(&questions).Error
	return questions, err
}

// ListChapters 按章节分组统计题目数量
func (r *QuestionRepository) ListChapters() ([]model.ChapterCount, error) {
	chapters := []model.ChapterCount{}
	err := r.DB.Model(&model.Question{}).
		Select("chapter AS name, COUNT(*) AS question_count").
		Group("chapter").
		Order("chapter asc").
		Scan(&chapters).Error
	return chapters, err
}

func (r *QuestionRepository) ListImports(page, limit int) ([]model.QuestionImport, int64, error) {
	var imports []model.QuestionImport
	var total int64

	if err := r.DB.Model(&model.QuestionImport{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := r.DB.Order("id desc").Offset(offset).Limit(limit).Find(&imports).Error
	return imports, total, err
}
