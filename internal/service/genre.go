package service

import "strings"

// GenreStrategy 长篇类型策略：按关键字匹配类型标签，命中后把指令注入提示词
type GenreStrategy struct {
	Key         string
	Keywords    []string
	Instruction string
}

// genreStrategies 长篇小说类型策略矩阵（百万字级）
// 有序切片而不是 map：命中取第一条，顺序必须是确定的
var genreStrategies = []GenreStrategy{
	{
		Key:      "history",
		Keywords: []string{"历史", "权谋", "架空历史", "穿越", "三国", "大秦", "大明"},
		Instruction: `
【长篇驱动模式：推演与势】
- 核心动力：从"棋子"到"棋手"的转变，积蓄力量 -> 改变大势 -> 遭遇反噬 -> 建立新秩序。
- 关键节点：
  * 100万字：必须完成阶级跨越，成为一方诸侯或朝堂大佬。
  * 300万字：必须涉及改朝换代或文明路线的分歧（如：工业革命 vs 传统皇权）。
- 爽点来源：种田建设的成就感、运筹帷幄的智商碾压、改变历史意难平。
- 写作风格：厚重、考究。多用侧面描写烘托大势，对话需符合时代阶级特征，权谋要草蛇灰线。
`,
	},
	{
		Key:      "scifi",
		Keywords: []string{"科幻", "星际", "赛博朋克", "末世", "机甲", "未来"},
		Instruction: `
【长篇驱动模式：尺度跃迁】
- 核心动力：技术奇点与文明冲突，从"行星地表"走向"宇宙深空"。
- 关键节点：
  * 100万字：接触第一类外星文明或完成关键技术飞跃（如可控核聚变）。
  * 300万字：涉及维度战争、宇宙社会学或时间悖论。
  * 500万字：探讨存在意义、创世/灭世的哲学命题。
- 写作风格：冷峻、理性。注重技术细节的逻辑自洽（Hard Sci-Fi）或社会学推演（Soft Sci-Fi）。
`,
	},
	{
		Key:      "supernatural",
		Keywords: []string{"灵异", "惊悚", "恐怖", "神秘复苏", "克苏鲁", "怪谈"},
		Instruction: `
【长篇驱动模式：拼图与规则】
- 核心动力：从"求生者"变为"驾驭者"，建立自己的势力/禁区。
- 关键节点：
  * 100万字：主角建立安全区/驭鬼者组织。
  * 300万字：世界观彻底崩坏，从解决灵异事件变成对抗末日/旧日支配者。
- 恐怖维持：随着主角变强，恐怖源从"具体的鬼"升级为"无法理解的规则"或"因果律"。
- 写作风格：压抑、诡谲。多用环境描写烘托氛围，强调未知的恐惧，少用热血词汇。
`,
	},
	{
		Key:      "suspense",
		Keywords: []string{"悬疑", "刑侦", "推理", "侦探", "犯罪"},
		Instruction: `
【长篇驱动模式：剥洋葱引擎】
- 核心动力：案中案，局中局，阴谋的无限嵌套。
- 关键节点：
  * 100万字：揭开第一个大BOSS，却发现他只是某个庞大组织的棋子。
  * 300万字：主角发现自己也是阴谋的一部分（身世之谜/记忆修改）。
- 续航关键：永远不要让读者看到真相的全貌，每解决一个谜题，要引出两个新谜题。
- 写作风格：紧凑、高智商。强调逻辑链条，伏笔回收必须严丝合缝，反转要震撼。
`,
	},
	{
		Key:      "western_fantasy",
		Keywords: []string{"西幻", "奇幻", "DND", "魔法", "龙与地下城", "领主"},
		Instruction: `
【长篇驱动模式：史诗构建】
- 核心动力：探索地图 + 收集神器 + 阵营战争 + 封神之路。
- 关键节点：
  * 100万字：完成小队集结，解决王国危机/深渊入侵。
  * 300万字：点燃神火，参与位面战争/深渊血战。
  * 500万字：建立神系，重塑晶壁系规则。
- 写作风格：史诗感、咏叹调。注重种族习俗、宗教历史、魔法原理的深度描写。
`,
	},
	{
		Key:      "eastern_fantasy",
		Keywords: []string{"玄幻", "仙侠", "修真", "高武", "洪荒", "东方玄幻"},
		Instruction: `
【长篇驱动模式：位面飞升】
- 核心动力：生命层次的进化，换地图（新手村->主城->新位面->神界）。
- 关键节点：
  * 100万字：称霸本位面/人界，准备飞升。
  * 300万字：在更高位面建立宗门/天庭，参与大道之争。
- 爽点来源：境界突破、宝物争夺、跨阶杀敌、众生膜拜。
- 写作风格：热血、宏大。强调战斗画面的破坏力，等级森严的社会结构。
`,
	},
	{
		Key:      "urban",
		Keywords: []string{"都市", "言情", "职场", "现实", "生活", "娱乐", "重生", "神豪", "校花"},
		Instruction: `
【长篇驱动模式：圈层与欲望】
- 核心动力：社会地位的提升、财富/权力的积累、情感的圆满。
- 关键节点：
  * 50万字（积累期）：第一桶金，初识关键人脉，解决生存危机。
  * 200万字（扩张期）：行业博弈，资本运作，确立行业地位。
  * 500万字（巅峰期）：改变世界/行业规则，从棋子变成棋手。
- 写作重点：
  * 去翻译腔：对话符合当代口语，多用潜台词。
  * 细节质感：具体描写品牌、车型、食物、穿搭，增加真实感。
  * 爽点：并非单纯打脸，而是通过"人脉网"和"资源调动"降维打击对手。
`,
	},
}

// GenreStrategyFor 根据类型标签取长篇策略指令
// 大小写不敏感的子串匹配，没命中返回空串
func GenreStrategyFor(genre string) string {
	if genre == "" {
		return ""
	}

	genreLower := strings.ToLower(genre)

	for _, strategy := range genreStrategies {
		for _, keyword := range strategy.Keywords {
			if strings.Contains(genreLower, keyword) {
				return strategy.Instruction
			}
		}
	}

	return ""
}
