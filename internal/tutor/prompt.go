package tutor

import (
	"fmt"

	"github.com/abenov/mathai/internal/chat"
)

// welcomeMessage is the greeting that opens every fresh conversation.
func welcomeMessage() chat.Message {
	return chat.NewAssistantMessage(
		"Сәлем, досым! 👋 Мен сенің математика бойынша көмекшіңмін. "+
			"Қай сыныпта оқисың және бүгін қандай тақырыппен айналысамыз? "+
			"Тақырыпты таңдасаң, бірге есеп шығарамыз! 🚀",
		nil,
	)
}

// topicConfirmation is appended to the log when the learner picks a topic.
func topicConfirmation(grade chat.Grade, topic string) string {
	return fmt.Sprintf(
		"Өте жақсы таңдау! Енді біз %s-сыныптың \"%s\" тақырыбы бойынша жұмыс істейміз. Қандай есебің бар? ✍️",
		grade, topic,
	)
}

// systemPrompt instructs the model to behave as a friendly Kazakh-language
// math tutor. The learner's level shifts the register: higher levels get
// less hand-holding.
func systemPrompt(topic string, grade chat.Grade, level int) string {
	encouragement := "Оқушыны жиі мақтап, әр қадамды егжей-тегжейлі түсіндір."
	if level >= 5 {
		encouragement = "Оқушы тәжірибелі: жауапты бірден айтпай, бағыттаушы сұрақтар қойып, өзі шешуіне жетеле."
	}

	return fmt.Sprintf(`Сен — Қазақстандағы %s-сынып оқушыларына арналған мейірімді әрі сабырлы математика мұғалімісің. Қазіргі тақырып: "%s". Оқушының деңгейі: %d.

Ережелер:
1. Тек қазақ тілінде жауап бер. Жауабың қысқа да нұсқа, достық үнде болсын.
2. Есепті бірден шешіп берме: алдымен шарттарын бірге талда, сосын қадам-қадаммен түсіндір.
3. Барлық формулалар мен математикалық өрнектерді LaTeX форматында жаз: жолдың ішінде $...$, жеке жолда $$...$$.
4. Оқушы қателессе, қатесін жұмсақ түрде көрсетіп, дұрыс бағытқа сілте.
5. %s
6. Есеп тақырыптан тыс болса да көмектес, бірақ мүмкіндігінше қазіргі тақырыпқа байланыстыр.
7. Эмодзині орынды жерде ғана қолдан. 😊`,
		grade, topic, level, encouragement)
}
