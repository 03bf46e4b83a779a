package leads_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garderie-etoiles/website/modules/leads"
)

func TestInscriptionNotification(t *testing.T) {
	t.Parallel()

	t.Run("includes every field in both variants", func(t *testing.T) {
		t.Parallel()

		req := validInscription()
		notif, err := leads.InscriptionNotification(req)
		require.NoError(t, err)

		assert.Equal(t, "Nouvelle demande d'inscription — Léa Tremblay", notif.Subject)
		for _, v := range []string{
			req.ParentName, req.ParentEmail, req.ParentPhone,
			req.ChildName, req.ChildBirthDate, req.StartDate, req.ServiceType,
		} {
			assert.Contains(t, notif.HTML, v)
			assert.Contains(t, notif.Text, v)
		}
	})

	t.Run("omits the optional section when empty", func(t *testing.T) {
		t.Parallel()

		req := validInscription()
		req.AdditionalInfo = ""
		notif, err := leads.InscriptionNotification(req)
		require.NoError(t, err)

		assert.NotContains(t, notif.HTML, "Informations Supplémentaires")
		assert.NotContains(t, notif.Text, "Informations Supplémentaires")
	})

	t.Run("escapes free text and converts newlines", func(t *testing.T) {
		t.Parallel()

		req := validInscription()
		req.AdditionalInfo = "a & b \"quoted\"\nligne 2"
		notif, err := leads.InscriptionNotification(req)
		require.NoError(t, err)

		assert.Contains(t, notif.HTML, "a &amp; b &#34;quoted&#34;<br>ligne 2")
		assert.Contains(t, notif.Text, "a & b \"quoted\"\nligne 2")
	})
}

func TestContactNotification(t *testing.T) {
	t.Parallel()

	req := validContact()
	notif, err := leads.ContactNotification(req)
	require.NoError(t, err)

	assert.Equal(t, "Nouveau message de contact — Marie Gagnon", notif.Subject)
	assert.Contains(t, notif.HTML, "Garderie la fée des étoiles")
	assert.Contains(t, notif.HTML, req.Email)
	assert.Contains(t, notif.Text, "Message :")

	req.Details = ""
	notif, err = leads.ContactNotification(req)
	require.NoError(t, err)
	assert.NotContains(t, notif.Text, "Message :")
}
