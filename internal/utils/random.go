package utils

import (
	"math/rand"

	"github.com/mozillazg/go-pinyin"
	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/domain"
)

var commonSurnames = []string{
	"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴",
	"徐", "孙", "胡", "朱", "高", "林", "何", "郭", "马", "罗",
}
var commonNameCharacters = []string{
	"伟", "强", "芳", "敏", "静", "丽", "刚", "杰", "娟", "勇",
	"艳", "涛", "明", "军", "磊", "洋", "霞", "飞", "玲", "超",
	"华", "平", "辉", "梅", "鑫", "龙", "鹏", "玉", "斌", "欣",
}

func GenerateRandomChineseName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	nameLength := rand.Intn(2) + 1
	name := ""

	for i := 0; i < nameLength; i++ {
		name += commonNameCharacters[rand.Intn(len(commonNameCharacters))]
	}
	return surname + name
}

var digits = "0123456789"

// GenerateEmployeeCodeFromChineseName 用姓名拼音加随机数字生成员工编号，兼作邮箱前缀
func GenerateEmployeeCodeFromChineseName(chineseName string) string {
	pinyinArray := pinyin.LazyConvert(chineseName, nil)
	code := ""

	for _, syllable := range pinyinArray {
		code += syllable
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		code += string(digits[rand.Intn(len(digits))])
	}

	return code
}

var positions = []string{"收银", "导购", "仓管", "客服", "保安"}

func GenerateRandomPosition() string {
	return positions[rand.Intn(len(positions))]
}

var timeOffTypes = []domain.TimeOffType{
	domain.TimeOffVacation,
	domain.TimeOffSickLeave,
	domain.TimeOffPersonalDay,
}

func GenerateRandomTimeOffType() domain.TimeOffType {
	return timeOffTypes[rand.Intn(len(timeOffTypes))]
}

// GenerateRandomEmployee 生成随机员工，邮箱域名由调用方给定
func GenerateRandomEmployee(groupID int64, emailDomainName string) *domain.Employee {
	fullName := GenerateRandomChineseName()
	code := GenerateEmployeeCodeFromChineseName(fullName)

	return &domain.Employee{
		GroupID:  groupID,
		Name:     fullName,
		Position: GenerateRandomPosition(),
		Email:    code + "@" + emailDomainName,
	}
}
