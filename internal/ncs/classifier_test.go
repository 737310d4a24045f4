// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package ncs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kkokgo/masterdb/internal/config"
	"github.com/kkokgo/masterdb/internal/table"
)

func defaultClassifier(t *testing.T) *Classifier {
	t.Helper()

	rules, err := config.DefaultNCSRules()
	require.NoError(t, err)
	return NewClassifier(rules)
}

func TestCategory(t *testing.T) {
	t.Parallel()

	classifier := defaultClassifier(t)
	testCases := map[string]struct {
		name         string
		schoolType   string
		expectedCode string
		expectedName string
	}{
		"information technology keyword": {
			name:         "서울디지텍고등학교",
			expectedCode: "20",
			expectedName: "정보통신",
		},
		"name is trimmed": {
			name:         "  선린인터넷고등학교  ",
			schoolType:   "상업",
			expectedCode: "20",
			expectedName: "정보통신",
		},
		"keywords are case sensitive": {
			name:         "it고등학교",
			expectedCode: "00",
			expectedName: "기타",
		},
		"design and contents": {
			name:         "한국애니메이션고등학교",
			expectedCode: "08",
			expectedName: "문화·예술·디자인·방송",
		},
		"health care": {
			name:         "대구보건고등학교",
			expectedCode: "06",
			expectedName: "보건·의료",
		},
		"science school with home economics type is food service": {
			name:         "서울과학기술고등학교",
			schoolType:   "가사",
			expectedCode: "13",
			expectedName: "음식서비스",
		},
		"science school without home economics type falls back": {
			name:         "미림여자정보과학고등학교",
			schoolType:   "공업",
			expectedCode: "00",
			expectedName: "기타",
		},
		"mechanics": {
			name:         "부산기계공업고등학교",
			schoolType:   "공업",
			expectedCode: "15",
			expectedName: "기계",
		},
		"earlier category wins": {
			name:         "한국게임마이스터고등학교",
			expectedCode: "20",
			expectedName: "정보통신",
		},
		"fashion": {
			name:         "서울패션고등학교",
			expectedCode: "18",
			expectedName: "섬유·의복",
		},
		"electronics": {
			name:         "수원하이텍전자고등학교",
			expectedCode: "15",
			expectedName: "기계",
		},
		"semiconductors": {
			name:         "충북반도체고등학교",
			expectedCode: "19",
			expectedName: "전기·전자",
		},
		"commerce type": {
			name:         "서울여자상업고등학교",
			schoolType:   " 상업 ",
			expectedCode: "02",
			expectedName: "경영·회계·사무",
		},
		"business keyword": {
			name:         "서울금융고등학교",
			expectedCode: "02",
			expectedName: "경영·회계·사무",
		},
		"nothing matches": {
			name:         "서울고등학교",
			schoolType:   "일반",
			expectedCode: "00",
			expectedName: "기타",
		},
	}

	for testName, test := range testCases {
		t.Run(testName, func(t *testing.T) {
			t.Parallel()

			category := classifier.Category(test.name, test.schoolType)
			assert.Equal(t, test.expectedCode, category.Code)
			assert.Equal(t, test.expectedName, category.Name)
		})
	}
}

func TestCategoryCustomRules(t *testing.T) {
	t.Parallel()

	classifier := NewClassifier(&config.NCSRules{
		Categories: []config.NCSCategory{
			{
				Code: "99", Name: "test", Badge: "test badge",
				Rules: []config.NCSRule{{NameContains: []string{"A", "B"}, TypeContains: []string{"x"}}},
			},
		},
		Fallback: config.NCSCategory{Code: "00", Name: "other", Badge: "other"},
	})

	assert.Equal(t, "99", classifier.Category("school B", "xyz").Code)
	assert.Equal(t, "00", classifier.Category("school B", "yz").Code)
	assert.Equal(t, "00", classifier.Category("school C", "x").Code)
}

func TestClassify(t *testing.T) {
	t.Parallel()

	directory := &table.Table{
		Columns: []string{"AdminStandardCode", "SchoolName", "SchoolType", "Homepage", "Address"},
		Rows: [][]any{
			{int64(7010123), " 서울디지텍고등학교 ", "공업", "http://sdh.hs.kr", "서울특별시 용산구"},
			{int64(7010124), "", "상업", "", ""},
			{int64(7010125), "서울여자상업고등학교", "상업", "", " 서울특별시 중구 "},
			{int64(7010126), "서울고등학교", "", nil},
		},
	}

	schools, err := defaultClassifier(t).Classify(directory, Columns{
		Name:     "SchoolName",
		Type:     "SchoolType",
		Address:  "Address",
		Homepage: "Homepage",
	})
	require.NoError(t, err)

	expected := []School{
		{
			ID:            1,
			SchoolName:    "서울디지텍고등학교",
			Type:          "공업",
			Address:       "서울특별시 용산구",
			Homepage:      "http://sdh.hs.kr",
			NCSCode:       "20",
			NCSName:       "정보통신",
			NCSBadgeLabel: "정보통신",
		},
		{
			ID:            3,
			SchoolName:    "서울여자상업고등학교",
			Type:          "상업",
			Address:       "서울특별시 중구",
			NCSCode:       "02",
			NCSName:       "경영·회계·사무",
			NCSBadgeLabel: "경영·금융",
		},
		{
			ID:            4,
			SchoolName:    "서울고등학교",
			NCSCode:       "00",
			NCSName:       "기타",
			NCSBadgeLabel: "기타",
		},
	}
	assert.Equal(t, expected, schools)
}

func TestClassifyOptionalColumns(t *testing.T) {
	t.Parallel()

	directory := &table.Table{
		Columns: []string{"name"},
		Rows:    [][]any{{"서울패션고등학교"}},
	}

	schools, err := defaultClassifier(t).Classify(directory, Columns{Name: "name", Type: "missing"})
	require.NoError(t, err)
	require.Len(t, schools, 1)
	assert.Equal(t, "18", schools[0].NCSCode)
	assert.Empty(t, schools[0].Type)
	assert.Empty(t, schools[0].Address)
}

func TestClassifyMissingNameColumn(t *testing.T) {
	t.Parallel()

	schools, err := defaultClassifier(t).Classify(table.New("Address"), Columns{Name: "SchoolName"})
	assert.Nil(t, schools)
	assert.ErrorIs(t, err, ErrMissingNameColumn)
	assert.ErrorIs(t, err, table.ErrColumnNotFound)
}
