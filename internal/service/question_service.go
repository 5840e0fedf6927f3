package service

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"interview_warmup_backend/internal/model"
	"interview_warmup_backend/internal/util"
)

// DefaultSampleSize 每次练习默认抽取的题目数
const DefaultSampleSize = 5

// QuestionService 按岗位加载静态题库并随机抽样，除读文件外无副作用
type QuestionService struct {
	Dir string
}

func NewQuestionService(dir string) *QuestionService {
	return &QuestionService{Dir: dir}
}

// CatalogFilename 岗位名到题库文件名的确定性映射：小写、空格转下划线
func CatalogFilename(position string) string {
	return strings.ReplaceAll(strings.ToLower(position), " ", "_") + ".json"
}

// LoadCatalog 读取并解析一个岗位的完整题库
func (s *QuestionService) LoadCatalog(position string) ([]model.Question, error) {
	path := filepath.Join(s.Dir, CatalogFilename(position))

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", util.ErrPositionNotFound, position)
		}
		return nil, fmt.Errorf("%w: %v", util.ErrCatalogUnreadable, err)
	}

	var questions []model.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrCatalogUnreadable, err)
	}

	return questions, nil
}

// FetchSample 均匀无放回抽样。count 超过题库大小时返回打乱后的整个题库，
// 不视为错误（对短题库的降级行为，不另行告知调用方）。
func (s *QuestionService) FetchSample(position string, count int) ([]model.Question, error) {
	if count <= 0 {
		count = DefaultSampleSize
	}

	catalog, err := s.LoadCatalog(position)
	if err != nil {
		return nil, err
	}

	shuffled := make([]model.Question, len(catalog))
	copy(shuffled, catalog)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if count >= len(shuffled) {
		return shuffled, nil
	}
	return shuffled[:count], nil
}

// Positions 扫描题库目录，还原可选岗位名（下划线转空格并首字母大写）
func (s *QuestionService) Positions() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrCatalogUnreadable, err)
	}

	var positions []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		base := strings.TrimSuffix(entry.Name(), ".json")
		positions = append(positions, titleCase(strings.ReplaceAll(base, "_", " ")))
	}
	sort.Strings(positions)
	return positions, nil
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
