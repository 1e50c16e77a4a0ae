package generate

import (
	"fmt"
	"strings"
)

// systemPrompt frames every request. All user-facing output is Arabic.
const systemPrompt = `أنت أستاذ خبير ومتميز في البكالوريا الجزائرية. تجيب دائماً بلغة عربية فصحى سليمة وواضحة، وبأسلوب تربوي مشوق يناسب طلبة السنة الثالثة ثانوي.`

// notationRule returns the notation constraint for the subject: LaTeX for
// scientific subjects, plain prose for literary ones.
func notationRule(scientific bool) string {
	if scientific {
		return "استخدم تنسيق LaTeX للرموز الرياضية والفيزيائية، وضع الصيغ بين علامتي دولار هكذا: $...$."
	}
	return "هذه مادة أدبية، تجنب تماماً استخدام أي رموز رياضية أو LaTeX. ركز على جودة اللغة العربية."
}

// groundingBlock quotes lesson content or program text the model must rely
// on exclusively. Empty grounding yields an empty block.
func groundingBlock(intro, text string) string {
	if text == "" {
		return ""
	}
	return fmt.Sprintf("%s\n\"\"\"\n%s\n\"\"\"\n", intro, text)
}

func lessonGrounding(c Context) string {
	if c.LessonContent != "" {
		return groundingBlock("اعتمد حصرياً على المحتوى التالي:", c.LessonContent)
	}
	if c.ProgramText != "" {
		return groundingBlock("استعن بالبرنامج السنوي التالي:", c.ProgramText)
	}
	return ""
}

func buildExplainPrompt(c Context) string {
	var b strings.Builder
	b.WriteString(lessonGrounding(c))
	fmt.Fprintf(&b, "اشرح لي درس \"%s\" في مادة %s لشعبة %s بأسلوب مبسط وشيق جداً. ",
		c.LessonTitle, c.SubjectName, c.SpecialtyName)
	b.WriteString("قسم الشرح إلى نقاط واضحة، وركز على ما يُطرح منه في البكالوريا. ")
	b.WriteString(notationRule(c.Scientific))
	return b.String()
}

func buildDocumentPrompt(c Context) string {
	var b strings.Builder
	b.WriteString(groundingBlock("بناءً على المحتوى التالي من الملف المرفق:", c.LessonContent))
	b.WriteString("اشرح لي محتوى هذا الملف بالتفصيل وبطريقة سهلة جداً للفهم، وكأني طالب مبتدئ. ")
	b.WriteString("قسم الشرح إلى نقاط واضحة ومفصلة، ثم اقترح علي أسئلة لأختبر فهمي.")
	return b.String()
}

func buildChatPrompt(c Context, userMessage string) string {
	var b strings.Builder
	b.WriteString(lessonGrounding(c))
	fmt.Fprintf(&b, "السياق: درس \"%s\" في مادة %s لشعبة %s.\n", c.LessonTitle, c.SubjectName, c.SpecialtyName)
	b.WriteString(notationRule(c.Scientific))
	b.WriteString("\n\n")
	b.WriteString(userMessage)
	return b.String()
}

func buildExercisesPrompt(c Context) string {
	var b strings.Builder
	b.WriteString(lessonGrounding(c))
	fmt.Fprintf(&b, "قم بكتابة موضوع امتحان نموذجي كامل لدرس \"%s\" في مادة %s لشعبة %s.\n",
		c.LessonTitle, c.SubjectName, c.SpecialtyName)
	b.WriteString("1. الموضوع يتكون من 3 تمارين متدرجة الصعوبة.\n")
	b.WriteString("2. لغة عربية فصحى سليمة.\n")
	fmt.Fprintf(&b, "3. %s", notationRule(c.Scientific))
	return b.String()
}

func buildSolutionPrompt(c Context, exercises string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "قدم الحل النموذجي المفصل لموضوع التمارين التالي:\n\n%s\n\n", exercises)
	b.WriteString("اعرض خطوات الحل كاملة مع سلم التنقيط. ")
	b.WriteString(notationRule(c.Scientific))
	return b.String()
}

func buildQuizPrompt(c Context) string {
	var b strings.Builder
	b.WriteString("أنت مصحح دقيق في البكالوريا الجزائرية. ")
	b.WriteString(lessonGrounding(c))
	fmt.Fprintf(&b, "قم بتوليد اختبار MCQ احترافي مكون من 10 أسئلة دقيقة لدرس \"%s\" في مادة %s لشعبة %s. ",
		c.LessonTitle, c.SubjectName, c.SpecialtyName)
	b.WriteString("يجب أن تكون الأسئلة متنوعة وتحاكي نمط البكالوريا، ولكل سؤال 4 خيارات واحد منها فقط صحيح. ")
	b.WriteString(notationRule(c.Scientific))
	b.WriteString(" أجب بتنسيق JSON فقط.")
	return b.String()
}

func buildLessonPlanPrompt(c Context) string {
	var b strings.Builder
	b.WriteString(groundingBlock("استعن بالبرنامج السنوي التالي:", c.ProgramText))
	fmt.Fprintf(&b, "أنت مفتش تربوي خبير. اكتب مذكرة بيداغوجية كاملة لدرس \"%s\" في مادة %s لشعبة %s.\n",
		c.LessonTitle, c.SubjectName, c.SpecialtyName)
	b.WriteString(`التزم بالعناوين التالية بالترتيب:
## الكفاءة المستهدفة
## الأهداف التعلمية
## الوسائل التعليمية
## سير الحصة
## التقويم`)
	return b.String()
}

func buildExamPrompt(c Context, semester int, lessonTitles []string) string {
	var b strings.Builder
	b.WriteString(groundingBlock("استعن بالبرنامج السنوي التالي:", c.ProgramText))
	fmt.Fprintf(&b, "قم ببناء اختبار الفصل %d كاملاً في مادة %s لشعبة %s، يغطي الدروس التالية:\n",
		semester, c.SubjectName, c.SpecialtyName)
	for _, title := range lessonTitles {
		fmt.Fprintf(&b, "- %s\n", title)
	}
	b.WriteString("اكتب نص الموضوع كاملاً في examText، والتصحيح النموذجي المفصل مع سلم التنقيط في solutionText. ")
	b.WriteString(notationRule(c.Scientific))
	b.WriteString(" أجب بتنسيق JSON فقط.")
	return b.String()
}

func buildSuggestionsPrompt(c Context, lastMessage string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "بناءً على الشرح السابق لدرس \"%s\":\n\n%s\n\n", c.LessonTitle, lastMessage)
	b.WriteString("اقترح 3 أسئلة متابعة قصيرة ومهمة يطرحها الطالب. أجب بتنسيق JSON فقط.")
	return b.String()
}
