package words

// WordItem is a single drawable prompt. Word doubles as the ground-truth
// answer for guess evaluation.
type WordItem struct {
	Word       string `json:"word"`
	Difficulty string `json:"difficulty"`
	Category   string `json:"category"`
}

const (
	DifficultyEasy   = "easy"
	DifficultyNormal = "normal"
	DifficultyHard   = "hard"
	DifficultyAll    = "all"
)

// catalog is the built-in word bank.
var catalog = []WordItem{
	// 动物
	{Word: "猫", Difficulty: DifficultyEasy, Category: "动物"},
	{Word: "狗", Difficulty: DifficultyEasy, Category: "动物"},
	{Word: "鱼", Difficulty: DifficultyEasy, Category: "动物"},
	{Word: "鸟", Difficulty: DifficultyEasy, Category: "动物"},
	{Word: "大象", Difficulty: DifficultyNormal, Category: "动物"},
	{Word: "长颈鹿", Difficulty: DifficultyNormal, Category: "动物"},
	{Word: "企鹅", Difficulty: DifficultyNormal, Category: "动物"},
	{Word: "熊猫", Difficulty: DifficultyNormal, Category: "动物"},
	{Word: "蝴蝶", Difficulty: DifficultyHard, Category: "动物"},
	{Word: "乌贼", Difficulty: DifficultyHard, Category: "动物"},

	// 食物
	{Word: "苹果", Difficulty: DifficultyEasy, Category: "食物"},
	{Word: "香蕉", Difficulty: DifficultyEasy, Category: "食物"},
	{Word: "米饭", Difficulty: DifficultyEasy, Category: "食物"},
	{Word: "面条", Difficulty: DifficultyEasy, Category: "食物"},
	{Word: "披萨", Difficulty: DifficultyNormal, Category: "食物"},
	{Word: "汉堡", Difficulty: DifficultyNormal, Category: "食物"},
	{Word: "寿司", Difficulty: DifficultyNormal, Category: "食物"},
	{Word: "冰淇淋", Difficulty: DifficultyNormal, Category: "食物"},
	{Word: "蛋糕", Difficulty: DifficultyEasy, Category: "食物"},
	{Word: "咖啡", Difficulty: DifficultyNormal, Category: "食物"},

	// 物品
	{Word: "钥匙", Difficulty: DifficultyEasy, Category: "物品"},
	{Word: "椅子", Difficulty: DifficultyEasy, Category: "物品"},
	{Word: "桌子", Difficulty: DifficultyEasy, Category: "物品"},
	{Word: "门", Difficulty: DifficultyEasy, Category: "物品"},
	{Word: "窗户", Difficulty: DifficultyEasy, Category: "物品"},
	{Word: "灯", Difficulty: DifficultyEasy, Category: "物品"},
	{Word: "手机", Difficulty: DifficultyNormal, Category: "物品"},
	{Word: "电脑", Difficulty: DifficultyNormal, Category: "物品"},
	{Word: "雨伞", Difficulty: DifficultyNormal, Category: "物品"},
	{Word: "眼镜", Difficulty: DifficultyNormal, Category: "物品"},
	{Word: "齿轮", Difficulty: DifficultyHard, Category: "物品"},
	{Word: "显微镜", Difficulty: DifficultyHard, Category: "物品"},
	{Word: "望远镜", Difficulty: DifficultyHard, Category: "物品"},

	// 动作
	{Word: "跑步", Difficulty: DifficultyEasy, Category: "动作"},
	{Word: "跳跃", Difficulty: DifficultyEasy, Category: "动作"},
	{Word: "走路", Difficulty: DifficultyEasy, Category: "动作"},
	{Word: "唱歌", Difficulty: DifficultyEasy, Category: "动作"},
	{Word: "跳舞", Difficulty: DifficultyEasy, Category: "动作"},
	{Word: "游泳", Difficulty: DifficultyEasy, Category: "动作"},
	{Word: "睡觉", Difficulty: DifficultyEasy, Category: "动作"},
	{Word: "吃饭", Difficulty: DifficultyEasy, Category: "动作"},
	{Word: "写字", Difficulty: DifficultyEasy, Category: "动作"},
	{Word: "骑车", Difficulty: DifficultyNormal, Category: "动作"},

	// 自然
	{Word: "太阳", Difficulty: DifficultyEasy, Category: "自然"},
	{Word: "月亮", Difficulty: DifficultyEasy, Category: "自然"},
	{Word: "星星", Difficulty: DifficultyEasy, Category: "自然"},
	{Word: "云", Difficulty: DifficultyEasy, Category: "自然"},
	{Word: "雨", Difficulty: DifficultyEasy, Category: "自然"},
	{Word: "火", Difficulty: DifficultyEasy, Category: "自然"},
	{Word: "树", Difficulty: DifficultyEasy, Category: "自然"},
	{Word: "花", Difficulty: DifficultyEasy, Category: "自然"},
	{Word: "山", Difficulty: DifficultyEasy, Category: "自然"},
	{Word: "海", Difficulty: DifficultyEasy, Category: "自然"},
	{Word: "地震", Difficulty: DifficultyHard, Category: "自然"},
	{Word: "彩虹", Difficulty: DifficultyHard, Category: "自然"},
	{Word: "火山", Difficulty: DifficultyHard, Category: "自然"},

	// 运动
	{Word: "足球", Difficulty: DifficultyEasy, Category: "运动"},
	{Word: "篮球", Difficulty: DifficultyEasy, Category: "运动"},
	{Word: "网球", Difficulty: DifficultyNormal, Category: "运动"},
	{Word: "乒乓球", Difficulty: DifficultyNormal, Category: "运动"},
	{Word: "羽毛球", Difficulty: DifficultyNormal, Category: "运动"},
	{Word: "溜冰", Difficulty: DifficultyNormal, Category: "运动"},
	{Word: "滑雪", Difficulty: DifficultyNormal, Category: "运动"},
	{Word: "冲浪", Difficulty: DifficultyHard, Category: "运动"},

	// 职业
	{Word: "医生", Difficulty: DifficultyEasy, Category: "职业"},
	{Word: "老师", Difficulty: DifficultyEasy, Category: "职业"},
	{Word: "警察", Difficulty: DifficultyEasy, Category: "职业"},
	{Word: "消防员", Difficulty: DifficultyNormal, Category: "职业"},
	{Word: "飞行员", Difficulty: DifficultyNormal, Category: "职业"},
	{Word: "厨师", Difficulty: DifficultyNormal, Category: "职业"},
	{Word: "画家", Difficulty: DifficultyNormal, Category: "职业"},

	// 交通
	{Word: "汽车", Difficulty: DifficultyEasy, Category: "交通"},
	{Word: "自行车", Difficulty: DifficultyEasy, Category: "交通"},
	{Word: "火车", Difficulty: DifficultyEasy, Category: "交通"},
	{Word: "飞机", Difficulty: DifficultyEasy, Category: "交通"},
	{Word: "船", Difficulty: DifficultyEasy, Category: "交通"},
	{Word: "公交车", Difficulty: DifficultyEasy, Category: "交通"},
	{Word: "摩托车", Difficulty: DifficultyNormal, Category: "交通"},
	{Word: "直升机", Difficulty: DifficultyHard, Category: "交通"},

	// 建筑
	{Word: "房子", Difficulty: DifficultyEasy, Category: "建筑"},
	{Word: "城堡", Difficulty: DifficultyNormal, Category: "建筑"},
	{Word: "教堂", Difficulty: DifficultyNormal, Category: "建筑"},
	{Word: "金字塔", Difficulty: DifficultyHard, Category: "建筑"},
	{Word: "摩天大楼", Difficulty: DifficultyHard, Category: "建筑"},

	// 节日
	{Word: "圣诞节", Difficulty: DifficultyEasy, Category: "节日"},
	{Word: "元旦", Difficulty: DifficultyEasy, Category: "节日"},
	{Word: "春节", Difficulty: DifficultyEasy, Category: "节日"},
	{Word: "万圣节", Difficulty: DifficultyNormal, Category: "节日"},
	{Word: "复活节", Difficulty: DifficultyNormal, Category: "节日"},

	// 乐器
	{Word: "吉他", Difficulty: DifficultyEasy, Category: "乐器"},
	{Word: "钢琴", Difficulty: DifficultyEasy, Category: "乐器"},
	{Word: "小提琴", Difficulty: DifficultyNormal, Category: "乐器"},
	{Word: "鼓", Difficulty: DifficultyEasy, Category: "乐器"},
	{Word: "长笛", Difficulty: DifficultyNormal, Category: "乐器"},

	// 情感
	{Word: "开心", Difficulty: DifficultyEasy, Category: "情感"},
	{Word: "伤心", Difficulty: DifficultyEasy, Category: "情感"},
	{Word: "生气", Difficulty: DifficultyEasy, Category: "情感"},
	{Word: "害怕", Difficulty: DifficultyEasy, Category: "情感"},
	{Word: "惊讶", Difficulty: DifficultyEasy, Category: "情感"},
}

// CatalogSize reports the number of built-in words.
func CatalogSize() int {
	return len(catalog)
}
