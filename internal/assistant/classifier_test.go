package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		want      Topic
	}{
		{"empty", "", TopicDefault},
		{"greeting", "hello there", TopicDefault},
		{"risk english", "What is my RISK today?", TopicRisk},
		{"risk hindi", "मेरा जोखिम क्या है", TopicRisk},
		{"irrigation stem", "Should I irrigate?", TopicIrrigation},
		{"irrigation noun", "irrigation schedule", TopicIrrigation},
		{"water", "how much Water do crops need", TopicIrrigation},
		{"water hindi", "पानी कब दूं", TopicIrrigation},
		{"irrigation hindi", "सिंचाई करूं?", TopicIrrigation},
		{"sell", "when should I sell wheat", TopicMarket},
		{"price hindi", "गेहूं की कीमत", TopicMarket},
		{"market hindi", "बाजार कैसा है", TopicMarket},
		{"sell hindi", "कब बेचूं", TopicMarket},
		{"scheme", "any Subsidy for tractors?", TopicScheme},
		{"yojana", "pm kisan yojana", TopicScheme},
		{"scheme hindi", "कौन सी योजना है", TopicScheme},
		{"subsidy hindi", "सब्सिडी मिलेगी?", TopicScheme},
		{"risk beats irrigation", "risk of water shortage", TopicRisk},
		{"irrigation beats market", "market price for irrigation water", TopicIrrigation},
		{"market beats scheme", "scheme to sell crops", TopicMarket},
		{"substring inside word", "I love watermelon", TopicIrrigation},
		{"hindi risk beats hindi market", "बाजार का जोखिम", TopicRisk},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.utterance))
		})
	}
}

func TestRulesOrder(t *testing.T) {
	got := Rules()
	topics := make([]Topic, 0, len(got))
	for _, r := range got {
		topics = append(topics, r.Topic)
	}

	assert.Equal(t, []Topic{TopicRisk, TopicIrrigation, TopicMarket, TopicScheme}, topics)
}

func TestRulesReturnsCopy(t *testing.T) {
	got := Rules()
	got[0] = Rule{Topic: TopicScheme}
	got[1].Keywords[1] = "zzzz"

	assert.Equal(t, TopicRisk, Rules()[0].Topic)
	assert.Equal(t, "water", Rules()[1].Keywords[1])
	assert.Equal(t, TopicIrrigation, Classify("water"))
}

func TestRuleMatches(t *testing.T) {
	for _, r := range Rules() {
		for _, kw := range r.Keywords {
			assert.True(t, r.Matches("prefix "+kw+" suffix"), "%s should match %q", r.Topic, kw)
		}
		assert.False(t, r.Matches("nothing relevant"), "%s", r.Topic)
	}
}
