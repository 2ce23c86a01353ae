package assistant

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kisanmitra/backend/internal/domain"
)

func TestRespondDefaultsToEnglish(t *testing.T) {
	assert.Equal(t, Render(TopicScheme, domain.English, nil), Respond("scheme?", "", nil))
}

func TestFallbackReply(t *testing.T) {
	f := NewFallback()

	reply, err := f.Reply(context.Background(), domain.ChatRequest{
		Message:  "पानी कब देना है?",
		Language: domain.Hindi,
		Context: &domain.ContextSnapshot{Irrigation: &domain.IrrigationGuidance{
			Action:       domain.IrrigateNow,
			SoilMoisture: 30,
		}},
	})

	require.NoError(t, err)
	assert.Equal(t, "अभी सिंचाई करने की सिफारिश है। मिट्टी की नमी 30% है।", reply)
}

func TestFallbackConcurrentUse(t *testing.T) {
	f := NewFallback()
	req := domain.ChatRequest{Message: "risk", Context: &domain.ContextSnapshot{FarmRisk: sampleRisk()}}
	want, _ := f.Reply(context.Background(), req)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := f.Reply(context.Background(), req)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}
