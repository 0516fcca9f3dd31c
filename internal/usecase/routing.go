package usecase

import (
	"strings"

	"github.com/crescoflow/crescoflow-core/internal/entity"
)

// RouteChannel assigns the outbound channel for a lead that has none yet.
// Belgian mobile numbers (04 / +324 prefixes) go to SMS, anything with an
// email address goes to email, the rest is routed to cold calling.
func RouteChannel(l *entity.Lead) {
	if l.OutboundChannel != "" {
		return
	}

	phone := l.CEOPhone
	if phone == "" {
		phone = l.PhoneCompany
	}
	phone = strings.ReplaceAll(phone, " ", "")

	switch {
	case strings.HasPrefix(phone, "04") || strings.HasPrefix(phone, "+324"):
		l.OutboundChannel = entity.ChannelColdSMS
	case l.CEOEmail != "" || l.EmailCompany != "":
		l.OutboundChannel = entity.ChannelColdEmail
	default:
		l.OutboundChannel = entity.ChannelColdCall
	}
}
